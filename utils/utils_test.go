package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	require.Equal(t, 21.3, Round(64.0/3, 1))
	require.Equal(t, 22.0, Round(22.0, 1))
	require.Equal(t, 0.3, Round(0.25, 1))
	require.Equal(t, -0.3, Round(-0.25, 1))
	require.Equal(t, 1.23, Round(1.2345, 2))
	require.Equal(t, 12.0, Round(12.4, 0))
	require.True(t, math.IsNaN(Round(math.NaN(), 1)))
	require.True(t, math.IsInf(Round(math.Inf(-1), 1), -1))
}

func TestFormatFloat(t *testing.T) {
	for _, tc := range []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{1, "1"},
		{1.5, "1.5"},
		{21.3, "21.3"},
		{64.0 / 3, "21.3333"},
		{123456, "123456"},
		{1234567, "1.23457e+06"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	} {
		require.Equal(t, tc.want, FormatFloat(tc.x))
	}
}
