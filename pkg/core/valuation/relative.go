package valuation

import (
	"intrinsic_valuation/pkg/core/sector"
)

// Base weights for the four multiples. Renormalized at runtime over the
// multiples that produced a positive fair value.
var multipleWeights = map[string]float64{
	"pe":       0.30,
	"pb":       0.20,
	"ps":       0.20,
	"evebitda": 0.30,
}

// RelativeInput carries the per-share bases and the profitability
// context that adjusts the industry multiples. Rates are decimals.
type RelativeInput struct {
	EPS             float64 `json:"eps"`
	BookValuePS     float64 `json:"book_value_per_share"`
	RevenuePS       float64 `json:"revenue_per_share"`
	EBITDAPS        float64 `json:"ebitda_per_share"`
	NetDebtPS       float64 `json:"net_debt_per_share"`
	RevenueGrowth   Rate    `json:"revenue_growth"`
	ROE             Rate    `json:"roe"`
	NetMargin       Rate    `json:"net_margin"`
	OperatingMargin Rate    `json:"operating_margin"`
	Sector          string  `json:"sector"`
}

// MultipleValue is one multiple's contribution.
type MultipleValue struct {
	Multiple  float64 `json:"multiple"` // adjusted industry multiple applied
	FairValue float64 `json:"fair_value"`
	Weight    float64 `json:"weight"` // renormalized; 0 when excluded
}

// RelativeResult is the multiple-based fair value build-up.
type RelativeResult struct {
	SectorName  string                   `json:"sector_name"`
	PerMultiple map[string]MultipleValue `json:"per_multiple"`
	FairValue   float64                  `json:"fair_value"`
}

// RelativeValuation prices the share off adjusted industry-average
// multiples. Each multiple is shifted for the company's growth and
// profitability profile, applied to its per-share base, and the
// positive results are blended with renormalized weights.
func RelativeValuation(in RelativeInput, table *sector.Table) RelativeResult {
	if table == nil {
		table = sector.Default()
	}
	m := table.Match(in.Sector)
	res := RelativeResult{
		SectorName:  m.DisplayName,
		PerMultiple: map[string]MultipleValue{},
	}

	// P/E: +/-20% by revenue growth.
	pe := m.PE
	if in.RevenueGrowth > 0.15 {
		pe *= 1.2
	} else if in.RevenueGrowth < 0.05 {
		pe *= 0.8
	}
	peFV := 0.0
	if in.EPS > 0 {
		peFV = in.EPS * pe
	}
	res.PerMultiple["pe"] = MultipleValue{Multiple: pe, FairValue: peFV}

	// P/B: +/-20% by ROE.
	pb := m.PB
	if in.ROE > 0.15 {
		pb *= 1.2
	} else if in.ROE < 0.05 {
		pb *= 0.8
	}
	pbFV := 0.0
	if in.BookValuePS > 0 {
		pbFV = in.BookValuePS * pb
	}
	res.PerMultiple["pb"] = MultipleValue{Multiple: pb, FairValue: pbFV}

	// P/S: +/-30% by net margin.
	ps := m.PS
	if in.NetMargin > 0.15 {
		ps *= 1.3
	} else if in.NetMargin < 0.05 {
		ps *= 0.7
	}
	psFV := 0.0
	if in.RevenuePS > 0 {
		psFV = in.RevenuePS * ps
	}
	res.PerMultiple["ps"] = MultipleValue{Multiple: ps, FairValue: psFV}

	// EV/EBITDA: +25% needs high growth AND margin; -20% on either
	// low growth or thin margin. Equity bridge nets out debt.
	ev := m.EVEBITDA
	if in.RevenueGrowth > 0.15 && in.OperatingMargin > 0.2 {
		ev *= 1.25
	} else if in.RevenueGrowth < 0.05 || in.OperatingMargin < 0.1 {
		ev *= 0.8
	}
	evFV := 0.0
	if in.EBITDAPS > 0 {
		evFV = in.EBITDAPS*ev - in.NetDebtPS
	}
	res.PerMultiple["evebitda"] = MultipleValue{Multiple: ev, FairValue: evFV}

	// Renormalize weights over the multiples that produced a value.
	var totalWeight float64
	for k, mv := range res.PerMultiple {
		if mv.FairValue > 0 {
			totalWeight += multipleWeights[k]
		}
	}
	if totalWeight == 0 {
		return res
	}
	for k, mv := range res.PerMultiple {
		if mv.FairValue > 0 {
			mv.Weight = multipleWeights[k] / totalWeight
			res.FairValue += mv.FairValue * mv.Weight
		}
		res.PerMultiple[k] = mv
	}
	return res
}

// BlendFairValue combines the DCF and multiple-based views, dcfWeight
// on the DCF side and the remainder on the multiples. When one side is
// unavailable the other stands alone.
func BlendFairValue(dcfValue, multipleValue, dcfWeight float64) float64 {
	w := clamp(dcfWeight, 0, 1)
	switch {
	case dcfValue > 0 && multipleValue > 0:
		return dcfValue*w + multipleValue*(1-w)
	case dcfValue > 0:
		return dcfValue
	case multipleValue > 0:
		return multipleValue
	default:
		return 0
	}
}
