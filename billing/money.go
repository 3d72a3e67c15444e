package billing

import "math"

// Amounts are whole rupiah; there is no minor unit to display.

// Round rounds x to the nearest whole currency unit.
func Round(x float64) float64 {
	return math.Round(x)
}

// PercentageOf returns pct percent of base, rounded to a whole unit.
func PercentageOf(base, pct float64) float64 {
	return Round(base * pct / 100)
}

// ClampNonNegative floors x at zero. Negative intermediate results are
// clamped rather than propagated.
func ClampNonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
