package valuation

import (
	"math"
)

// Stage-1 growth ratio within this distance of 1 makes the geometric
// series numerically degenerate; the linear branch takes over.
const degenerateEps = 1e-10

// ClosedFormInput drives the closed-form two-stage per-share DCF. Base
// is a per-share figure (EPS or FCF per share); rates are decimals.
type ClosedFormInput struct {
	Base         float64 `json:"base"`
	GrowthStage1 Rate    `json:"growth_stage1"`
	GrowthStage2 Rate    `json:"growth_stage2"`
	Discount     Rate    `json:"discount"`
	Years1       int     `json:"years1"`
	Years2       int     `json:"years2"`
}

// ClosedFormResult reports the value together with the effective rates
// actually used and the direct-sum cross-check, so the documented input
// repairs (g1 clamped to its band, d forced above g2) stay observable.
type ClosedFormResult struct {
	Value             float64 `json:"value"`
	EffectiveGrowth1  Rate    `json:"effective_growth_stage1"`
	EffectiveDiscount Rate    `json:"effective_discount"`
	DirectSum         float64 `json:"direct_sum"`
	CrossCheckDelta   float64 `json:"cross_check_delta"`
	GrowthClamped     bool    `json:"growth_clamped"`
	Repaired          bool    `json:"repaired"`
	Valid             bool    `json:"valid"`
}

// EarningsBasedDCF values a share as the discounted sum of two growth
// stages of EPS.
//
// FORMULA: V = EPS * [ x(1-x^n1)/(1-x) + x^n1 * y(1-y^n2)/(1-y) ]
//
// Where:
//   - x = (1+g1)/(1+d), y = (1+g2)/(1+d)
//   - g1 is clamped to [5%, 20%]
//   - n1 = high-growth years, n2 = stable-growth years
func EarningsBasedDCF(eps float64, g1, g2, d Rate, n1, n2 int) ClosedFormResult {
	return closedFormTwoStage(ClosedFormInput{
		Base: eps, GrowthStage1: g1, GrowthStage2: g2,
		Discount: d, Years1: n1, Years2: n2,
	})
}

// FCFBasedDCF is the same model over free cash flow per share.
func FCFBasedDCF(fcfPerShare float64, g1, g2, d Rate, n1, n2 int) ClosedFormResult {
	return closedFormTwoStage(ClosedFormInput{
		Base: fcfPerShare, GrowthStage1: g1, GrowthStage2: g2,
		Discount: d, Years1: n1, Years2: n2,
	})
}

func closedFormTwoStage(in ClosedFormInput) ClosedFormResult {
	res := ClosedFormResult{
		EffectiveGrowth1:  in.GrowthStage1,
		EffectiveDiscount: in.Discount,
	}
	if in.Base <= 0 || in.Years1 <= 0 || in.Years2 < 0 {
		return res
	}

	// The closed form only holds over its calibrated growth band; rates
	// outside [5%, 20%] are clamped. Callers see the rate actually used.
	g1 := in.GrowthStage1
	if g1 < 0.05 || g1 > 0.20 {
		g1 = clamp(g1, 0.05, 0.20)
		res.GrowthClamped = true
		res.EffectiveGrowth1 = g1
	}

	d := in.Discount
	if d <= in.GrowthStage2 {
		// Documented repair: a perpetual stage growing at or above the
		// discount rate diverges.
		d = in.GrowthStage2 + 0.02
		res.Repaired = true
		res.EffectiveDiscount = d
	}

	x := (1 + g1) / (1 + d)
	y := (1 + in.GrowthStage2) / (1 + d)
	n1 := float64(in.Years1)
	n2 := float64(in.Years2)

	var stage1 float64
	if math.Abs(x-1) < degenerateEps {
		// Growth equals discount: each year contributes exactly Base.
		stage1 = n1
	} else {
		stage1 = x * (1 - math.Pow(x, n1)) / (1 - x)
	}

	var stage2 float64
	if math.Abs(y-1) < degenerateEps {
		stage2 = math.Pow(x, n1) * n2
	} else {
		stage2 = math.Pow(x, n1) * y * (1 - math.Pow(y, n2)) / (1 - y)
	}

	res.Value = in.Base * (stage1 + stage2)
	res.DirectSum = directTwoStageSum(in.Base, g1, in.GrowthStage2, d, in.Years1, in.Years2)
	res.CrossCheckDelta = math.Abs(res.Value - res.DirectSum)
	res.Valid = true
	return res
}

// directTwoStageSum is the year-by-year discounted sum the closed form
// must reproduce. Kept as the cross-check reference.
func directTwoStageSum(base float64, g1, g2, d Rate, n1, n2 int) float64 {
	var total float64
	cf := base
	for t := 1; t <= n1; t++ {
		cf *= 1 + g1
		total += cf / math.Pow(1+d, float64(t))
	}
	for t := 1; t <= n2; t++ {
		cf *= 1 + g2
		total += cf / math.Pow(1+d, float64(n1+t))
	}
	return total
}
