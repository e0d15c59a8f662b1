package sample_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lost-woods/sampler/src/rng"
	"github.com/lost-woods/sampler/src/sample"
)

// scriptedSource replays a fixed list of draw values and records the bound
// and width of every call.
type scriptedSource struct {
	t       *testing.T
	draws   []uint64
	bounds  []uint64
	calls32 int
	calls64 int
}

func (s *scriptedSource) next(bound uint64) uint64 {
	if len(s.draws) == 0 {
		s.t.Fatalf("source exhausted; unexpected draw with bound %d", bound)
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	s.bounds = append(s.bounds, bound)
	if v >= bound {
		s.t.Fatalf("scripted draw %d out of range for bound %d", v, bound)
	}
	return v
}

func (s *scriptedSource) Uint32n(bound uint32) uint32 {
	s.calls32++
	return uint32(s.next(uint64(bound)))
}

func (s *scriptedSource) Uint64n(bound uint64) uint64 {
	s.calls64++
	return s.next(bound)
}

// countingSource counts draws; values come from a seeded PRNG.
type countingSource struct {
	e     rng.Entropy
	calls int
}

func (s *countingSource) Uint32n(bound uint32) uint32 {
	s.calls++
	return s.e.Uint32n(bound)
}

func (s *countingSource) Uint64n(bound uint64) uint64 {
	s.calls++
	return s.e.Uint64n(bound)
}

func TestSample_FloydTrace(t *testing.T) {
	// length=5, n=3: candidates 2,3,4 draw against bounds 3,4,5.
	// Draw 1 fills slot 0. Draw 1 collides with slot 0, demoting it to the
	// candidate 3 while slot 1 takes the 1. Draw 2 is fresh.
	src := &scriptedSource{t: t, draws: []uint64{1, 1, 2}}

	got, ok := sample.Sample(src, 5, 3)
	require.True(t, ok)
	require.Equal(t, []int{3, 1, 2}, got)
	require.Equal(t, []uint64{3, 4, 5}, src.bounds)
}

func TestSample_InfeasibleConsumesNoDraws(t *testing.T) {
	src := &countingSource{e: rng.NewSeededPRNGSource(1)}

	got, ok := sample.Sample(src, 3, 5)
	require.False(t, ok)
	require.Nil(t, got)
	require.Zero(t, src.calls, "no draws may be consumed on an infeasible request")
}

func TestSample_ZeroCount(t *testing.T) {
	src := &countingSource{e: rng.NewSeededPRNGSource(1)}

	for _, length := range []int{0, 1, 100} {
		got, ok := sample.Sample(src, length, 0)
		require.True(t, ok, "length=%d", length)
		require.Empty(t, got, "length=%d", length)
	}
	require.Zero(t, src.calls)
}

func TestSample_Invariants(t *testing.T) {
	e := rng.NewSeededPRNGSource(0xfeedbeef)

	cases := []struct {
		length int
		n      int
	}{
		{1, 1},
		{2, 1},
		{5, 3},
		{32, 32},
		{1000, 10},
		{1000, 999},
	}

	for _, tc := range cases {
		for trial := 0; trial < 50; trial++ {
			got, ok := sample.Sample(e, tc.length, tc.n)
			require.True(t, ok, "length=%d n=%d", tc.length, tc.n)
			require.Len(t, got, tc.n)

			seen := make(map[int]bool, tc.n)
			for _, v := range got {
				require.GreaterOrEqual(t, v, 0)
				require.Less(t, v, tc.length)
				require.False(t, seen[v], "duplicate index %d (length=%d n=%d)", v, tc.length, tc.n)
				seen[v] = true
			}
		}
	}
}

func TestSample_FullPermutation(t *testing.T) {
	e := rng.NewSeededPRNGSource(42)

	for _, length := range []int{0, 1, 2, 7, 52} {
		got, ok := sample.Sample(e, length, length)
		require.True(t, ok, "length=%d", length)
		require.Len(t, got, length)

		seen := make([]bool, length)
		for _, v := range got {
			seen[v] = true
		}
		for i, s := range seen {
			require.True(t, s, "index %d missing from permutation of length %d", i, length)
		}
	}
}

func TestSampleInto_ReusesBuffer(t *testing.T) {
	e := rng.NewSeededPRNGSource(7)

	var buf [4]int
	require.True(t, sample.SampleInto(e, 10, buf[:]))
	seen := make(map[int]bool)
	for _, v := range buf {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
		require.False(t, seen[v])
		seen[v] = true
	}

	require.False(t, sample.SampleInto(e, 3, buf[:]))
}

// All C(4,2)*2! = 12 ordered pairs must come up equally often.
func TestSample_OrderedPairUniformity(t *testing.T) {
	e := rng.NewSeededPRNGSource(0x5eed)

	const (
		length = 4
		n      = 2
		trials = 120000
	)

	counts := make(map[[2]int]int)
	for i := 0; i < trials; i++ {
		got, ok := sample.Sample(e, length, n)
		if !ok {
			t.Fatal("unexpected infeasible result")
		}
		counts[[2]int{got[0], got[1]}]++
	}

	require.Len(t, counts, 12, "every ordered distinct pair must be reachable")

	expected := float64(trials) / 12
	var chi float64
	for _, c := range counts {
		diff := float64(c) - expected
		chi += diff * diff / expected
	}
	// 11 degrees of freedom; p=0.001 cutoff is ~31.3. Deterministic seed,
	// so this is a regression gate rather than a flaky statistical test.
	require.Less(t, chi, 31.3, "ordered pairs are not uniform: chi-square=%f", chi)
}

func TestIndex_WidthPolicy(t *testing.T) {
	src := &scriptedSource{t: t, draws: []uint64{5, 6, 7}}

	// Bounds that fit 32 bits always use the 32-bit path.
	_ = sample.Index(src, 10)
	require.Equal(t, 1, src.calls32)
	require.Equal(t, 0, src.calls64)

	// Computed at runtime so the test also compiles on 32-bit hosts, where
	// such bounds cannot exist and the 64-bit path stays unreachable.
	if bits.UintSize == 64 {
		var max32 uint64 = math.MaxUint32

		_ = sample.Index(src, int(max32))
		require.Equal(t, 2, src.calls32)
		require.Equal(t, 0, src.calls64)

		_ = sample.Index(src, int(max32+1))
		require.Equal(t, 1, src.calls64)
	}
}

func TestIndex_ZeroBoundPanics(t *testing.T) {
	src := &scriptedSource{t: t}
	require.Panics(t, func() { sample.Index(src, 0) })
	require.Panics(t, func() { sample.Index(src, -1) })
}

func TestSample_NegativeCountPanics(t *testing.T) {
	src := &scriptedSource{t: t}
	require.Panics(t, func() { sample.Sample(src, 10, -1) })
}

// Identical source streams and parameters must yield identical output.
func TestSample_DeterministicForFixedSeed(t *testing.T) {
	a, okA := sample.Sample(rng.NewSeededPRNGSource(99), 1000, 25)
	b, okB := sample.Sample(rng.NewSeededPRNGSource(99), 1000, 25)
	require.True(t, okA)
	require.True(t, okB)
	require.Equal(t, a, b)
}

func BenchmarkSample(b *testing.B) {
	e := rng.NewSeededPRNGSource(1)
	out := make([]int, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sample.SampleInto(e, 1000, out)
	}
}
