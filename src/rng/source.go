package rng

import (
	"io"

	"github.com/lost-woods/sampler/src/sample"
)

// Entropy is the service-level random-bit source: bounded uniform draws for
// the sampling core, raw bytes for request ids and the /bytes endpoint, and
// a sticky error for I/O-backed implementations.
//
// The sampling core treats sources as infallible, so a failing device
// cannot surface an error mid-draw. Instead the first failure is latched:
// subsequent draws return 0 and Err reports the original cause. Callers
// check Err after a draw sequence, the way one checks a bufio.Scanner.
type Entropy interface {
	sample.Source
	io.Reader

	// Err returns the first read failure encountered, or nil.
	Err() error
}
