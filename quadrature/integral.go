// Package quadrature implements classical quadrature rules over a tabulated
// function, i.e. a function only known through its values at a finite,
// ordered set of points.
//
// The rules assume strictly increasing points but do not check it: a
// non-increasing table yields a meaningless, finite result. See
// Integral.IsIncreasing.
package quadrature

import (
	"fmt"

	"github.com/labquad/integral/utils"
	"github.com/labquad/integral/utils/structs"
)

// Integral is a tabulated function: N points and the N values of the
// function at those points. Its zero value is the empty table.
//
// An Integral owns its storage and is never modified after construction.
type Integral struct {
	points structs.Vector[float64]
	values structs.Vector[float64]
}

// NewIntegral returns a new Integral holding copies of points and values.
// It returns an error wrapping ErrInvalidArgument if both slices are not of
// the same length.
func NewIntegral(points, values []float64) (*Integral, error) {
	if len(points) != len(values) {
		return nil, fmt.Errorf("cannot NewIntegral: len(points)=%d != len(values)=%d: %w", len(points), len(values), ErrInvalidArgument)
	}

	return &Integral{
		points: structs.NewVector(points),
		values: structs.NewVector(values),
	}, nil
}

// CopyNew returns a deep copy of the object.
func (i Integral) CopyNew() *Integral {
	return &Integral{
		points: i.points.CopyNew(),
		values: i.values.CopyNew(),
	}
}

// Len returns the number of points N.
func (i Integral) Len() int {
	return len(i.values)
}

// Value returns the value of the function at the idx-th point.
func (i Integral) Value(idx int) (float64, error) {
	if idx < 0 || idx >= i.Len() {
		return 0, fmt.Errorf("cannot Value: index %d not in [0, %d): %w", idx, i.Len(), ErrIndexOutOfRange)
	}
	return i.values[idx], nil
}

// Point returns the idx-th point.
func (i Integral) Point(idx int) (float64, error) {
	if idx < 0 || idx >= i.Len() {
		return 0, fmt.Errorf("cannot Point: index %d not in [0, %d): %w", idx, i.Len(), ErrIndexOutOfRange)
	}
	return i.points[idx], nil
}

// Points returns a copy of the points.
func (i Integral) Points() []float64 {
	return i.points.CopyNew()
}

// Values returns a copy of the values.
func (i Integral) Values() []float64 {
	return i.values.CopyNew()
}

// IsIncreasing reports whether the points are strictly increasing.
func (i Integral) IsIncreasing() bool {
	return utils.IsStrictlyIncreasing([]float64(i.points))
}

// Equal returns true if both tables hold bitwise identical points and values.
// A nil other is never equal.
func (i Integral) Equal(other *Integral) bool {
	return other != nil && i.points.Equal(other.points) && i.values.Equal(other.values)
}

// String renders the table on two lines:
//
//	input= argument p0  p1  ...  pN-1
//	function v0 v1 ... vN-1
//
// Points are separated by two spaces, values by one, and numbers use
// utils.FormatFloat.
func (i Integral) String() string {
	return "input= argument " + utils.JoinFloats([]float64(i.points), "  ") + "\n" +
		"function " + utils.JoinFloats([]float64(i.values), " ") + "\n"
}
