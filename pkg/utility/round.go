package utility

import (
	"math"

	"github.com/govalues/decimal"
)

// Round rounds v to the given number of decimal places.
// Values decimal cannot represent (NaN, Inf, out of range) are returned unchanged.
func Round(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	d, err := decimal.NewFromFloat64(v)
	if err != nil {
		return v
	}
	digits = clampScale(digits)

	out, ok := d.Rescale(digits).Float64()
	if !ok {
		return v
	}
	return out
}

// FormatFixed renders v with exactly digits decimal places.
func FormatFixed(v float64, digits int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}

	d, err := decimal.NewFromFloat64(v)
	if err != nil {
		return decimal.Zero.String()
	}
	digits = clampScale(digits)
	return d.Rescale(digits).String()
}

func clampScale(digits int) int {
	if digits < 0 {
		return 0
	}
	if digits > decimal.MaxScale {
		return decimal.MaxScale
	}
	return digits
}
