package rng

import (
	"errors"

	"github.com/lost-woods/sampler/src/sample"
)

// IntRange returns a uniform integer in [min, max] inclusive, drawn through
// the sampling core's index generator. Bounds are capped at ±1,000,000,000
// to keep request parameters sane; the range size therefore always fits the
// 32-bit draw path.
func IntRange(e Entropy, min int, max int) (int, error) {
	if min < -1000000000 {
		return 0, errors.New("the minimum value should not be lower than -1,000,000,000")
	}
	if min > 1000000000 {
		return 0, errors.New("the minimum value should not be higher than 1,000,000,000")
	}
	if max < -1000000000 {
		return 0, errors.New("the maximum value should not be lower than -1,000,000,000")
	}
	if max > 1000000000 {
		return 0, errors.New("the maximum value should not be higher than 1,000,000,000")
	}
	if min > max {
		return 0, errors.New("the minimum value should be smaller than or equal to the maximum value")
	}

	v := min + sample.Index(e, max-min+1)
	if err := e.Err(); err != nil {
		return 0, errors.New("error fetching random bytes")
	}
	return v, nil
}
