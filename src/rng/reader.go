package rng

import (
	"encoding/binary"
	"io"
)

// ReaderSource adapts a raw byte stream (a serial entropy device,
// crypto/rand.Reader, a deterministic test reader) into an Entropy source.
// Bounded draws use integer-only rejection sampling over big-endian words,
// unbiased assuming the byte stream is uniform.
//
// Not safe for concurrent use; wrap with NewLockedSource when shared.
type ReaderSource struct {
	r      io.Reader
	health *Health
	err    error
}

// NewReaderSource wraps r. h may be nil; when set, the first read failure
// flips it unhealthy.
func NewReaderSource(r io.Reader, h *Health) *ReaderSource {
	return &ReaderSource{r: r, health: h}
}

// Err returns the first read failure, or nil. Once set, every subsequent
// draw returns 0 without touching the underlying reader.
func (s *ReaderSource) Err() error { return s.err }

// Read exposes the raw stream.
func (s *ReaderSource) Read(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.r.Read(p)
	if err != nil {
		s.fail(err)
	}
	return n, err
}

func (s *ReaderSource) fail(err error) {
	s.err = err
	if s.health != nil {
		s.health.Set(false, "error fetching random bytes: "+err.Error())
	}
}

// Uint32n returns a uniform value in [0, bound).
// limit = floor(2^32/bound)*bound; draws at or above it would fold unevenly
// under the modulo, so they are rejected and redrawn.
func (s *ReaderSource) Uint32n(bound uint32) uint32 {
	if bound == 0 {
		panic("rng: Uint32n called with zero bound")
	}

	limit := (uint64(1)<<32)/uint64(bound) * uint64(bound)

	var buf [4]byte
	for s.err == nil {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			s.fail(err)
			break
		}
		x := binary.BigEndian.Uint32(buf[:])
		if uint64(x) < limit {
			return x % bound
		}
		// reject and retry
	}
	return 0
}

// Uint64n returns a uniform value in [0, bound). Same rejection scheme as
// Uint32n, with the acceptance cut phrased from the other end: draws below
// (2^64 - bound) mod bound are the uneven remainder and get redrawn.
func (s *ReaderSource) Uint64n(bound uint64) uint64 {
	if bound == 0 {
		panic("rng: Uint64n called with zero bound")
	}

	min := -bound % bound

	var buf [8]byte
	for s.err == nil {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			s.fail(err)
			break
		}
		x := binary.BigEndian.Uint64(buf[:])
		if x >= min {
			return x % bound
		}
		// reject and retry
	}
	return 0
}
