// Package utils implements small generic numeric helpers shared by the
// other packages.
package utils

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// FloatPrecision is the number of significant digits used by FormatFloat.
const FloatPrecision = 6

// Round returns x rounded half away from zero to the given number of
// decimal places, i.e. round(x * 10^places) / 10^places.
func Round[T constraints.Float](x T, places int) T {
	scale := math.Pow10(places)
	return T(math.Round(float64(x)*scale) / scale)
}

// FormatFloat formats x in the shortest of the %e and %f forms with
// FloatPrecision significant digits and without trailing zeros.
// Non-finite values are written inf, -inf and nan.
func FormatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'g', FloatPrecision, 64)
}
