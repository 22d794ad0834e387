// Package sampling implements the sampling of random numbers and random
// tabulation grids from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Float64 returns a float64 uniformly distributed in [min, max) drawn from prng.
func Float64(prng io.Reader, min, max float64) (float64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(prng, b); err != nil {
		return 0, fmt.Errorf("cannot Float64: %w", err)
	}
	// 53 random bits, the precision of a float64 mantissa
	f := float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53)
	return min + f*(max-min), nil
}

// Grid returns n strictly increasing points starting at a and ending at b,
// with random spacings whose ratio is at most 1 + spread.
// With n == 1 it returns a single point a.
func Grid(prng io.Reader, n int, a, b, spread float64) (points []float64, err error) {

	if n < 1 || !(a < b) || spread < 0 {
		return nil, fmt.Errorf("cannot Grid: invalid arguments n=%d, [a, b]=[%g, %g], spread=%g", n, a, b, spread)
	}

	points = make([]float64, n)
	points[0] = a

	if n == 1 {
		return
	}

	gaps := make([]float64, n-1)
	var total float64
	for i := range gaps {
		if gaps[i], err = Float64(prng, 1, 1+spread); err != nil {
			return nil, fmt.Errorf("cannot Grid: %w", err)
		}
		total += gaps[i]
	}

	var acc float64
	for i := 1; i < n-1; i++ {
		acc += gaps[i-1]
		points[i] = a + (b-a)*(acc/total)
	}
	points[n-1] = b

	return
}
