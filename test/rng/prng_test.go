package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lost-woods/sampler/src/rng"
)

func TestPRNGSource_DeterministicForSeed(t *testing.T) {
	a := rng.NewSeededPRNGSource(12345)
	b := rng.NewSeededPRNGSource(12345)

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint64n(1000), b.Uint64n(1000), "draw %d diverged", i)
	}

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)
	require.Equal(t, bufA, bufB)
}

func TestPRNGSource_BoundsRespected(t *testing.T) {
	s := rng.NewSeededPRNGSource(7)

	// Power-of-two bounds take the mask path; the rest the rejection paths.
	for _, bound := range []uint64{1, 2, 64, 3, 10, 1000003} {
		for i := 0; i < 2000; i++ {
			v := s.Uint64n(bound)
			require.Less(t, v, bound, "bound=%d", bound)
		}
	}

	for i := 0; i < 2000; i++ {
		require.Less(t, s.Uint32n(52), uint32(52))
	}
}

func TestPRNGSource_BoundOneAlwaysZero(t *testing.T) {
	s := rng.NewSeededPRNGSource(3)
	for i := 0; i < 100; i++ {
		require.Zero(t, s.Uint64n(1))
		require.Zero(t, s.Uint32n(1))
	}
}

func TestPRNGSource_ZeroBoundPanics(t *testing.T) {
	s := rng.NewSeededPRNGSource(3)
	require.Panics(t, func() { s.Uint64n(0) })
	require.Panics(t, func() { s.Uint32n(0) })
}

func TestPRNGSource_NeverErrors(t *testing.T) {
	s := rng.NewSeededPRNGSource(3)
	_ = s.Uint64n(10)
	require.NoError(t, s.Err())
}
