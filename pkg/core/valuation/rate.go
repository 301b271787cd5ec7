// Package valuation implements the intrinsic-value models: CAPM-based
// WACC estimation, two-stage DCF (closed form and general), sensitivity
// analysis, multiple-based relative valuation, and the value-creation
// spread.
package valuation

// Rate is an annual rate stored as a decimal (0.08 == 8%). All model
// math assumes decimals; percent-vs-decimal normalization happens once
// at input boundaries via NormalizeRate and never inside formulas.
type Rate = float64

// NormalizeRate converts user input that may be expressed in percent
// (8, 8.5) into a decimal rate. Magnitudes above the cutoff are treated
// as percent. Boundary-only: API handlers and CLI flags call this,
// engines never do.
func NormalizeRate(v float64) Rate {
	if v > 1.0 || v < -1.0 {
		return v / 100.0
	}
	return v
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
