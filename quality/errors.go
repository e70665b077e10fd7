package quality

import "errors"

var (
	// ErrTooFewDraws indicates fewer than five expected draws per bucket.
	ErrTooFewDraws = errors.New("quality: too few draws")

	// ErrBuckets indicates fewer than two buckets.
	ErrBuckets = errors.New("quality: need at least two buckets")

	// ErrOutOfRange indicates a source that produced a value outside [0,1).
	ErrOutOfRange = errors.New("quality: draw outside [0,1)")
)
