// Package sample selects distinct indices from a contiguous range using an
// abstract source of uniform random values.
//
// Results are reproducible across 32-bit and 64-bit hosts: every index is
// drawn through 32-bit arithmetic whenever the bound permits it, so the same
// source stream and parameters produce the same output everywhere.
package sample

import "math"

// Source produces unbiased uniform values within a caller-specified bound.
// Implementations advance internal state on every call and must not be
// shared across goroutines during a sampling call.
type Source interface {
	// Uint32n returns a uniform value in [0, bound). bound must be > 0.
	Uint32n(bound uint32) uint32
	// Uint64n returns a uniform value in [0, bound). bound must be > 0.
	Uint64n(bound uint64) uint64
}

// Index returns a uniform index in [0, bound).
//
// The draw width depends only on the value of bound, never on the host:
// bounds that fit in 32 bits are drawn as 32-bit values. This keeps output
// identical across architectures and is also the faster path. Panics if
// bound <= 0.
func Index(src Source, bound int) int {
	if bound <= 0 {
		panic("sample: Index called with non-positive bound")
	}
	if uint64(bound) <= math.MaxUint32 {
		return int(src.Uint32n(uint32(bound)))
	}
	// Only reachable on hosts whose int exceeds 32 bits; a 32-bit host
	// cannot construct such a bound in the first place.
	return int(src.Uint64n(uint64(bound)))
}

// SampleInto fills out with len(out) distinct indices drawn uniformly
// without replacement from [0, length), in random order. It reports false
// without consuming any draws when len(out) > length.
//
// This is Floyd's algorithm: candidates length-len(out) .. length-1 are
// visited in order, each drawing one index in [0, candidate]. A draw that
// collides with an earlier slot demotes that slot to the current candidate
// while the drawn value moves into the current slot, which keeps every
// ordering of every subset equally likely. O(n²) time over the prefix scan,
// no allocation.
func SampleInto(src Source, length int, out []int) bool {
	n := len(out)
	if n > length {
		return false
	}

	for i, j := 0, length-n; j < length; i, j = i+1, j+1 {
		t := Index(src, j+1)
		for pos := 0; pos < i; pos++ {
			if out[pos] == t {
				out[pos] = j
				break
			}
		}
		out[i] = t
	}
	return true
}

// Sample returns n distinct indices drawn uniformly without replacement
// from [0, length), in random order. The second return is false, and no
// draws are consumed, when n > length. n == length yields a full random
// permutation of the range. Panics if n is negative.
func Sample(src Source, length, n int) ([]int, bool) {
	if n < 0 {
		panic("sample: Sample called with negative count")
	}
	out := make([]int, n)
	if !SampleInto(src, length, out) {
		return nil, false
	}
	return out, true
}
