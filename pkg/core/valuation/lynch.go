package valuation

// PeterLynchFairValue prices a share off its growth-adjusted earnings.
//
// FORMULA: V = PEG * (g * 100) * EPS
//
// Where g is the expected earnings growth as a decimal. A missing or
// non-positive PEG falls back to 1.0, the classic fairly-priced
// assumption. Returns ok=false when EPS or growth cannot support the
// model.
func PeterLynchFairValue(pegRatio, eps float64, earningsGrowth Rate) (float64, bool) {
	if eps <= 0 || earningsGrowth <= 0 {
		return 0, false
	}
	if pegRatio <= 0 {
		pegRatio = 1.0
	}
	return pegRatio * (earningsGrowth * 100) * eps, true
}
