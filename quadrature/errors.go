package quadrature

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned when the inputs of an operation are
	// inconsistent: points and values of different lengths, or a number of
	// points that a rule cannot use.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLogic is returned by Simpson's rule when the number of points is even.
	ErrLogic = errors.New("logic error")

	// ErrIndexOutOfRange is returned by indexed accessors.
	ErrIndexOutOfRange = errors.New("index out of range")
)
