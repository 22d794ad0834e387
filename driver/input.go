package driver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/labquad/integral/quadrature"
)

// ReadTable reads a tabulated function from r as whitespace-separated
// tokens: the number of points N, then N points, then N values.
// Malformed or missing tokens return an error wrapping
// quadrature.ErrInvalidArgument.
func ReadTable(r io.Reader) (*quadrature.Integral, error) {

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("cannot read %s: %w", what, err)
			}
			return "", fmt.Errorf("cannot read %s: unexpected end of input: %w", what, quadrature.ErrInvalidArgument)
		}
		return scanner.Text(), nil
	}

	token, err := next("size")
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("cannot read size: %q is not a non-negative integer: %w", token, quadrature.ErrInvalidArgument)
	}

	readFloats := func(what string) ([]float64, error) {
		s := make([]float64, 0, min(n, 1<<16))
		for i := 0; i < n; i++ {
			token, err := next(fmt.Sprintf("%s[%d]", what, i))
			if err != nil {
				return nil, err
			}
			x, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, fmt.Errorf("cannot read %s[%d]: %q is not a number: %w", what, i, token, quadrature.ErrInvalidArgument)
			}
			s = append(s, x)
		}
		return s, nil
	}

	points, err := readFloats("point")
	if err != nil {
		return nil, err
	}

	values, err := readFloats("value")
	if err != nil {
		return nil, err
	}

	return quadrature.NewIntegral(points, values)
}
