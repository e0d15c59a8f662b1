package rng

import "sync"

// LockedSource wraps an Entropy source and serializes every draw and read
// with a mutex. This is critical for fairness and correctness when a single
// entropy source is shared across concurrent HTTP requests (and background
// health checks): each bounded draw holds the lock for its whole rejection
// loop, so concurrent callers cannot tear the underlying byte stream.
type LockedSource struct {
	e  Entropy
	mu sync.Mutex
}

// NewLockedSource returns an Entropy source that is safe for concurrent
// use. If e is already a *LockedSource, it is returned as-is.
func NewLockedSource(e Entropy) Entropy {
	if e == nil {
		return nil
	}
	if _, ok := e.(*LockedSource); ok {
		return e
	}
	return &LockedSource{e: e}
}

func (ls *LockedSource) Read(p []byte) (int, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.e.Read(p)
}

func (ls *LockedSource) Uint32n(bound uint32) uint32 {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.e.Uint32n(bound)
}

func (ls *LockedSource) Uint64n(bound uint64) uint64 {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.e.Uint64n(bound)
}

func (ls *LockedSource) Err() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.e.Err()
}
