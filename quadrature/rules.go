package quadrature

import (
	"fmt"
)

// All rules below sum over the N-1 intervals [points[k], points[k+1]].
// With N < 2 there is no interval and the rectangle and trapezoidal rules
// return the empty sum 0.

// LeftRectangle returns sum_k values[k] * (points[k+1] - points[k]).
func (i Integral) LeftRectangle() (integral float64) {
	x, y := i.points, i.values
	for k := 0; k < len(y)-1; k++ {
		integral += y[k] * (x[k+1] - x[k])
	}
	return
}

// RightRectangle returns sum_k values[k+1] * (points[k+1] - points[k]).
func (i Integral) RightRectangle() (integral float64) {
	x, y := i.points, i.values
	for k := 1; k < len(y); k++ {
		integral += y[k] * (x[k] - x[k-1])
	}
	return
}

// MiddleRectangle evaluates each interval at the mean of its two end values,
// since the function is unknown at the midpoint of the interval.
func (i Integral) MiddleRectangle() (integral float64) {
	x, y := i.points, i.values
	for k := 0; k < len(y)-1; k++ {
		integral += ((y[k] + y[k+1]) / 2) * (x[k+1] - x[k])
	}
	return
}

// Trapezoidal returns sum_k 0.5 * (values[k] + values[k-1]) * (points[k] - points[k-1]).
func (i Integral) Trapezoidal() (integral float64) {
	x, y := i.points, i.values
	for k := 1; k < len(y); k++ {
		integral += 0.5 * (y[k] + y[k-1]) * (x[k] - x[k-1])
	}
	return
}

// Simpson applies the composite Simpson's rule with the constant step
// h = (points[N-1] - points[0]) / (N-1): the interior values are weighted
// alternately by 4 and 2 and the sum is scaled by h/3.
//
// N must be odd, otherwise an error wrapping ErrLogic is returned.
// A single point spans no interval and integrates to 0.
func (i Integral) Simpson() (integral float64, err error) {

	n := i.Len()

	if n&1 == 0 {
		return 0, fmt.Errorf("cannot Simpson: the number of points must be odd but is %d: %w", n, ErrLogic)
	}

	if n == 1 {
		return 0, nil
	}

	x, y := i.points, i.values

	h := (x[n-1] - x[0]) / float64(n-1)

	integral = y[0] + y[n-1]

	for k := 1; k < n-1; k++ {
		if k&1 == 1 {
			integral += 4 * y[k]
		} else {
			integral += 2 * y[k]
		}
	}

	return integral * (h / 3), nil
}

// Newton38 applies Newton's 3/8 rule on each group of three consecutive
// intervals, with the local step h = (points[k+3] - points[k]) / 3.
//
// N must satisfy N >= 4 and (N-1) % 3 == 0, otherwise an error wrapping
// ErrInvalidArgument is returned.
func (i Integral) Newton38() (integral float64, err error) {

	n := i.Len()

	if n < 4 || (n-1)%3 != 0 {
		return 0, fmt.Errorf("cannot Newton38: the number of points must satisfy N >= 4 and (N-1) %% 3 == 0 but N=%d: %w", n, ErrInvalidArgument)
	}

	x, y := i.points, i.values

	for k := 0; k < n-3; k += 3 {
		h := (x[k+3] - x[k]) / 3
		integral += (y[k] + 3*y[k+1] + 3*y[k+2] + y[k+3]) * 3 * h / 8
	}

	return
}
