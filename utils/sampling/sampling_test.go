package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labquad/integral/utils"
	"github.com/labquad/integral/utils/sampling"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
	0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

func Test_PRNG(t *testing.T) {

	t.Run("KeyedPRNG/Reset", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			_, err = Hb.Read(sum1)
			require.NoError(t, err)
		}

		Hb.Reset()

		_, err = Ha.Read(sum0)
		require.NoError(t, err)
		_, err = Hb.Read(sum1)
		require.NoError(t, err)

		require.Equal(t, sum0, sum1)
		require.Equal(t, testKey, Ha.Key())
	})

	t.Run("Float64", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		for i := 0; i < 1000; i++ {
			x, err := sampling.Float64(prng, -2, 3)
			require.NoError(t, err)
			require.GreaterOrEqual(t, x, -2.0)
			require.Less(t, x, 3.0)
		}
	})

	t.Run("Grid", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		for _, n := range []int{1, 2, 3, 10, 100} {
			points, err := sampling.Grid(prng, n, -1, 4, 3)
			require.NoError(t, err)
			require.Len(t, points, n)
			require.Equal(t, -1.0, points[0])
			if n > 1 {
				require.Equal(t, 4.0, points[n-1])
			}
			require.True(t, utils.IsStrictlyIncreasing(points), "n=%d", n)
		}

		_, err = sampling.Grid(prng, 0, 0, 1, 1)
		require.Error(t, err)
		_, err = sampling.Grid(prng, 3, 1, 1, 1)
		require.Error(t, err)
	})
}
