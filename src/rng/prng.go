package rng

import (
	"encoding/binary"
	"math"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// PRNGSource is a seeded pseudo-random Entropy source for deployments
// without an entropy device, and for deterministic runs. It is not
// cryptographically secure.
//
// Not safe for concurrent use; wrap with NewLockedSource when shared.
type PRNGSource struct {
	src *prng.MT19937_64
}

// NewPRNGSource returns a source seeded from the wall clock.
func NewPRNGSource() *PRNGSource {
	return NewSeededPRNGSource(uint64(time.Now().UnixNano()))
}

// NewSeededPRNGSource returns a source with a fixed seed. The same seed
// always yields the same draw stream.
func NewSeededPRNGSource(seed uint64) *PRNGSource {
	src := prng.NewMT19937_64()
	src.Seed(seed)
	return &PRNGSource{src: src}
}

// Err always returns nil; the generator cannot fail.
func (*PRNGSource) Err() error { return nil }

// Read fills p with pseudo-random bytes. It never fails.
func (s *PRNGSource) Read(p []byte) (int, error) {
	var word [8]byte
	for n := 0; n < len(p); n += 8 {
		binary.BigEndian.PutUint64(word[:], s.src.Uint64())
		copy(p[n:], word[:])
	}
	return len(p), nil
}

// Uint64n returns a uniform value in [0, bound). Panics if bound is 0.
func (s *PRNGSource) Uint64n(bound uint64) uint64 {
	if bound == 0 {
		panic("rng: Uint64n called with zero bound")
	}

	n := bound - 1
	switch {
	// bound is a power of two, so we can just mask.
	//
	// Note: this also covers n == MaxUint64, since n+1 overflows to 0 and
	// overflow is defined behavior for unsigned integers in Go.
	case n&(n+1) == 0:
		return s.src.Uint64() & n

	// n is above MaxInt64, so over half of all uint64 values are in range
	// and plain rejection terminates quickly.
	case n > math.MaxInt64:
		v := s.src.Uint64()
		for v > n {
			v = s.src.Uint64()
		}
		return v

	// Draw 63-bit values below the largest multiple of bound that fits,
	// then reduce. Computing that multiple in 63 bits avoids the overflow
	// that the full 64-bit calculation would hit.
	default:
		maximum := uint64(1<<63) - 1 - (uint64(1)<<63)%bound
		v := s.src.Uint64() & math.MaxInt64
		for v > maximum {
			v = s.src.Uint64() & math.MaxInt64
		}
		return v % bound
	}
}

// Uint32n returns a uniform value in [0, bound). Panics if bound is 0.
func (s *PRNGSource) Uint32n(bound uint32) uint32 {
	return uint32(s.Uint64n(uint64(bound)))
}
