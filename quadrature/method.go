package quadrature

import (
	"fmt"
	"strings"
)

// Method identifies a quadrature rule.
type Method int

const (
	// MethodLeftRectangle evaluates each interval at its left end.
	MethodLeftRectangle = Method(iota)
	// MethodMiddleRectangle evaluates each interval at the mean of its end values.
	MethodMiddleRectangle
	// MethodRightRectangle evaluates each interval at its right end.
	MethodRightRectangle
	// MethodTrapezoidal is the composite trapezoidal rule.
	MethodTrapezoidal
	// MethodSimpson is the composite Simpson's rule, for an odd number of points.
	MethodSimpson
	// MethodNewton38 is Newton's 3/8 rule, for N >= 4 points with (N-1) % 3 == 0.
	MethodNewton38
)

// Methods lists every supported rule.
var Methods = []Method{
	MethodLeftRectangle,
	MethodMiddleRectangle,
	MethodRightRectangle,
	MethodTrapezoidal,
	MethodSimpson,
	MethodNewton38,
}

var methodNames = map[Method]string{
	MethodLeftRectangle:   "left-rectangle",
	MethodMiddleRectangle: "middle-rectangle",
	MethodRightRectangle:  "right-rectangle",
	MethodTrapezoidal:     "trapezoidal",
	MethodSimpson:         "simpson",
	MethodNewton38:        "newton-3/8",
}

// String returns the name of the rule, as accepted by ParseMethod.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the Method named s, ignoring case.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("cannot ParseMethod: unknown method %q: %w", s, ErrInvalidArgument)
}

// Evaluate applies the rule m to the table.
func (i Integral) Evaluate(m Method) (float64, error) {
	switch m {
	case MethodLeftRectangle:
		return i.LeftRectangle(), nil
	case MethodMiddleRectangle:
		return i.MiddleRectangle(), nil
	case MethodRightRectangle:
		return i.RightRectangle(), nil
	case MethodTrapezoidal:
		return i.Trapezoidal(), nil
	case MethodSimpson:
		return i.Simpson()
	case MethodNewton38:
		return i.Newton38()
	default:
		return 0, fmt.Errorf("cannot Evaluate: invalid method %s: %w", m, ErrInvalidArgument)
	}
}
