package ratios

import (
	"sort"

	"intrinsic_valuation/pkg/core/statements"
	"intrinsic_valuation/pkg/models"
)

// Outlier cutoffs for historical multiples. Anything beyond these is a
// data artifact (near-zero denominator year), not a valuation signal.
const (
	peOutlierCutoff = 200
	pbOutlierCutoff = 20
)

// RatioStats summarizes a historical multiple series.
type RatioStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
}

// HistoricalRatios holds per-year trailing P/E and P/B with summary
// stats. Years with non-positive earnings or equity are skipped.
type HistoricalRatios struct {
	PEByYear map[int]float64 `json:"pe_by_year"`
	PBByYear map[int]float64 `json:"pb_by_year"`
	PEStats  *RatioStats     `json:"pe_stats,omitempty"`
	PBStats  *RatioStats     `json:"pb_stats,omitempty"`
}

// ComputeHistoricalRatios derives yearly P/E and P/B from the annual
// statements and average prices per fiscal year. Shares outstanding is
// the current count, so older years are approximations.
func ComputeHistoricalRatios(s *models.StatementSet, avgPriceByYear map[int]float64, sharesOutstanding float64) *HistoricalRatios {
	h := &HistoricalRatios{
		PEByYear: map[int]float64{},
		PBByYear: map[int]float64{},
	}
	if s == nil || sharesOutstanding <= 0 || len(avgPriceByYear) == 0 {
		return h
	}

	for col, period := range s.Periods {
		year := periodYear(period)
		if year == 0 {
			continue
		}
		price, ok := avgPriceByYear[year]
		if !ok || price <= 0 {
			continue
		}

		if income, ok := statements.Resolve(s.Income, col, statements.NetIncomeLabels...); ok && income > 0 {
			eps := income / sharesOutstanding
			h.PEByYear[year] = price / eps
		}
		if equity, ok := statements.Resolve(s.Balance, col, statements.EquityLabels...); ok && equity > 0 {
			bvps := equity / sharesOutstanding
			h.PBByYear[year] = price / bvps
		}
	}

	h.PEStats = summarize(h.PEByYear, peOutlierCutoff)
	h.PBStats = summarize(h.PBByYear, pbOutlierCutoff)
	return h
}

func summarize(byYear map[int]float64, cutoff float64) *RatioStats {
	var vals []float64
	for _, v := range byYear {
		if v > 0 && v < cutoff {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	sort.Float64s(vals)

	var sum float64
	for _, v := range vals {
		sum += v
	}
	return &RatioStats{
		Min:    vals[0],
		Max:    vals[len(vals)-1],
		Avg:    sum / float64(len(vals)),
		Median: vals[len(vals)/2],
	}
}

// periodYear parses the leading year from a period end date like
// "2023-12-31".
func periodYear(period string) int {
	if len(period) < 4 {
		return 0
	}
	year := 0
	for _, c := range period[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}
