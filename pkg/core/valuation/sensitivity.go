package valuation

import (
	"math"
	"sort"
)

// Axis construction constants. Growth spans 0-15%, WACC spans the base
// estimate +/- 15 points with a 1% floor, both on 1% steps.
const (
	growthMin  = 0.0
	growthMax  = 0.15
	gridStep   = 0.01
	waccSpread = 0.15
	// WACC must clear the growth rate by a full point; the 0.0099
	// margin absorbs float rounding on the axis values.
	validMargin = 0.0099
)

// CellState tags how a grid cell got its value.
type CellState int

const (
	CellNA CellState = iota // invalid combination, no donor found
	CellValue
	CellInterpolated // copied from the nearest computed neighbor
	CellError        // valid combination but the model rejected it
)

// Cell is one fair-value scenario.
type Cell struct {
	Value float64   `json:"value"`
	State CellState `json:"state"`
}

// GridStats summarizes the populated cells against the current price.
type GridStats struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	AbovePercent float64 `json:"above_percent"`
	BelowPercent float64 `json:"below_percent"`
	Assessment   string  `json:"assessment"`
}

// Grid is the WACC x terminal-growth sensitivity matrix. Rows follow
// WACCValues ascending, columns follow GrowthValues ascending. BaseRow
// and BaseCol locate the base-case scenario (-1 when outside range).
type Grid struct {
	GrowthValues []Rate     `json:"growth_values"`
	WACCValues   []Rate     `json:"wacc_values"`
	Cells        [][]Cell   `json:"cells"`
	BaseRow      int        `json:"base_row"`
	BaseCol      int        `json:"base_col"`
	Stats        *GridStats `json:"stats,omitempty"`
}

// SensitivityInput drives grid construction. The evaluator is the
// two-stage model with stage-1 inputs held fixed while terminal growth
// and discount sweep.
type SensitivityInput struct {
	BaseCashFlow       float64
	GrowthStage1       Rate
	BaseTerminalGrowth Rate
	BaseWACC           Rate
	Years1             int
	NetDebt            float64
	SharesOutstanding  float64
	CurrentPrice       float64
}

// BuildSensitivityGrid sweeps terminal growth and WACC around the base
// case, computes every valid combination, then fills invalid cells from
// their nearest computed neighbor so the rendered table has no holes.
func BuildSensitivityGrid(in SensitivityInput) *Grid {
	growths := growthAxis(in.BaseTerminalGrowth)
	waccs := waccAxis(in.BaseWACC, growths)

	g := &Grid{
		GrowthValues: growths,
		WACCValues:   waccs,
		Cells:        make([][]Cell, len(waccs)),
		BaseRow:      -1,
		BaseCol:      -1,
	}
	for i := range g.Cells {
		g.Cells[i] = make([]Cell, len(growths))
	}

	eval := func(tg, w Rate) (float64, bool) {
		res := TwoStageDCF(TwoStageInput{
			BaseCashFlow:      in.BaseCashFlow,
			GrowthStage1:      in.GrowthStage1,
			TerminalGrowth:    tg,
			Discount:          w,
			Years1:            in.Years1,
			Years2:            10,
			NetDebt:           in.NetDebt,
			SharesOutstanding: in.SharesOutstanding,
		})
		return res.FairValuePerShare, res.Success
	}

	// Direct pass: every combination where WACC clears growth by a full
	// point. Narrower spreads produce unstable terminal values and are
	// filled from neighbors instead.
	for i, w := range waccs {
		for j, tg := range growths {
			if w <= tg+validMargin {
				continue
			}
			if v, ok := eval(tg, w); ok {
				g.Cells[i][j] = Cell{Value: v, State: CellValue}
			} else {
				g.Cells[i][j] = Cell{State: CellError}
			}
		}
	}

	// Fill pass: invalid combinations borrow the nearest directly
	// computed value. Donors are CellValue only, in a fixed search
	// order so the result is deterministic: same WACC at higher
	// growth, then same growth at lower WACC, then expanding rings
	// along the 8 compass directions.
	for i, w := range waccs {
		for j, tg := range growths {
			if w > tg+validMargin {
				continue
			}
			if v, ok := g.nearestComputed(i, j); ok {
				g.Cells[i][j] = Cell{Value: v, State: CellInterpolated}
			}
		}
	}

	// The base rates were appended to the axes verbatim, so an exact
	// match exists.
	for i, w := range waccs {
		if w == round4(in.BaseWACC) {
			g.BaseRow = i
			break
		}
	}
	for j, tg := range growths {
		if tg == round4(in.BaseTerminalGrowth) {
			g.BaseCol = j
			break
		}
	}

	g.Stats = g.summarize(in.CurrentPrice)
	return g
}

func (g *Grid) nearestComputed(i, j int) (float64, bool) {
	for k := j + 1; k < len(g.GrowthValues); k++ {
		if g.Cells[i][k].State == CellValue {
			return g.Cells[i][k].Value, true
		}
	}
	for k := i - 1; k >= 0; k-- {
		if g.Cells[k][j].State == CellValue {
			return g.Cells[k][j].Value, true
		}
	}
	dirs := [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	limit := len(g.WACCValues)
	if len(g.GrowthValues) > limit {
		limit = len(g.GrowthValues)
	}
	for k := 1; k < limit; k++ {
		for _, d := range dirs {
			ni, nj := i+d[0]*k, j+d[1]*k
			if ni < 0 || ni >= len(g.WACCValues) || nj < 0 || nj >= len(g.GrowthValues) {
				continue
			}
			if g.Cells[ni][nj].State == CellValue {
				return g.Cells[ni][nj].Value, true
			}
		}
	}
	return 0, false
}

func (g *Grid) summarize(currentPrice float64) *GridStats {
	var values []float64
	for i := range g.Cells {
		for j := range g.Cells[i] {
			c := g.Cells[i][j]
			if c.State == CellValue || c.State == CellInterpolated {
				values = append(values, c.Value)
			}
		}
	}
	if len(values) == 0 {
		return nil
	}

	stats := &GridStats{Min: values[0], Max: values[0]}
	var sum float64
	var above, below int
	for _, v := range values {
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		if currentPrice > 0 {
			if v > currentPrice {
				above++
			} else if v < currentPrice {
				below++
			}
		}
	}
	stats.Mean = sum / float64(len(values))

	if currentPrice > 0 {
		stats.AbovePercent = float64(above) / float64(len(values)) * 100
		stats.BelowPercent = float64(below) / float64(len(values)) * 100
		switch {
		case stats.AbovePercent > 75:
			stats.Assessment = "Likely Undervalued"
		case stats.AbovePercent > 50:
			stats.Assessment = "Possibly Undervalued"
		case stats.BelowPercent > 75:
			stats.Assessment = "Likely Overvalued"
		case stats.BelowPercent > 50:
			stats.Assessment = "Possibly Overvalued"
		default:
			stats.Assessment = "Fairly Valued"
		}
	}
	return stats
}

func growthAxis(baseTerminal Rate) []Rate {
	var growths []Rate
	for v := growthMin; v <= growthMax+gridStep/2; v += gridStep {
		growths = append(growths, round4(v))
	}
	growths = appendUnique(growths, round4(baseTerminal))
	sort.Float64s(growths)
	return growths
}

// waccAxis builds the discount-rate rows: the base estimate +/- the
// spread, floored at 1%, extended so every growth column has at least
// one row a full point above it.
func waccAxis(baseWACC Rate, growths []Rate) []Rate {
	minW := math.Max(0.01, round2(baseWACC-waccSpread))
	maxW := round2(baseWACC + waccSpread)

	var common []Rate
	for v := minW; v <= maxW+gridStep/2; v += gridStep {
		common = append(common, round4(v))
	}

	var waccs []Rate
	for _, g := range growths {
		anyValid := false
		for _, w := range common {
			if w > g+validMargin {
				waccs = appendUnique(waccs, w)
				anyValid = true
			}
		}
		if !anyValid {
			waccs = appendUnique(waccs, round2(g+0.01))
		}
	}
	waccs = appendUnique(waccs, round4(baseWACC))
	sort.Float64s(waccs)
	return waccs
}

func appendUnique(vals []Rate, v Rate) []Rate {
	for _, x := range vals {
		if x == v {
			return vals
		}
	}
	return append(vals, v)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
