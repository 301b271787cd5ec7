// Package statements flattens raw statement tables into the model the
// valuation and ratio engines consume. All label lookups go through one
// ordered-fallback primitive so every consumer skips the same things:
// missing rows, nil cells, and zero placeholders.
package statements

import (
	"intrinsic_valuation/pkg/models"
)

// Resolve returns the value at column col for the first alias whose
// cell is present and non-zero. Zero is treated as "not reported":
// upstream feeds emit 0 where a line item does not apply, and a zero
// denominator is never a usable figure.
func Resolve(t models.StatementTable, col int, aliases ...string) (float64, bool) {
	if t == nil || col < 0 {
		return 0, false
	}
	for _, label := range aliases {
		row, ok := t[label]
		if !ok || col >= len(row) {
			continue
		}
		cell := row[col]
		if cell == nil || *cell == 0 {
			continue
		}
		return *cell, true
	}
	return 0, false
}

// ResolveOr is Resolve with a default.
func ResolveOr(t models.StatementTable, col int, def float64, aliases ...string) float64 {
	if v, ok := Resolve(t, col, aliases...); ok {
		return v
	}
	return def
}

// ResolveAny scans columns 0..maxCols-1 in order and returns the first
// hit. Used for sparse rows like interest expense where the latest
// column is often blank.
func ResolveAny(t models.StatementTable, maxCols int, aliases ...string) (float64, bool) {
	for col := 0; col < maxCols; col++ {
		if v, ok := Resolve(t, col, aliases...); ok {
			return v, true
		}
	}
	return 0, false
}

// Series returns up to n leading columns for the first alias that has
// any non-nil cell. Missing cells come back as 0 with ok=false in the
// parallel mask.
func Series(t models.StatementTable, n int, aliases ...string) ([]float64, []bool) {
	vals := make([]float64, n)
	mask := make([]bool, n)
	if t == nil {
		return vals, mask
	}
	for _, label := range aliases {
		row, found := t[label]
		if !found {
			continue
		}
		any := false
		for i := 0; i < n && i < len(row); i++ {
			if row[i] != nil {
				vals[i] = *row[i]
				mask[i] = true
				any = true
			}
		}
		if any {
			return vals, mask
		}
		// Reset in case a partial row wrote cells.
		for i := range vals {
			vals[i], mask[i] = 0, false
		}
	}
	return vals, mask
}
