// SPDX-License-Identifier: MIT
// Package: sample
//
// retry.go - bounded rejection sampling.
//
// Two policies, chosen per call site:
//   - Retry   (soft): the constraint is a preference, e.g. "no duplicate
//     question in this batch". After the ceiling the last candidate is kept.
//   - RetryOr (hard): the constraint is a correctness requirement, e.g.
//     "multipliers must be coprime". After the ceiling a constructive,
//     always-valid fallback is used instead.
//
// Either way the loop is counted, so work per item has a hard upper bound.

package sample

// Attempt ceilings used across generators.
const (
	// DefaultAttempts suits constraints that almost always hold.
	DefaultAttempts = 50
	// MaxAttempts is the ceiling for rarer constraints such as uniqueness
	// inside a nearly exhausted value range.
	MaxAttempts = 100
)

// Retry draws candidates until accept returns true or limit draws have been
// made. It returns the accepted candidate and true, or the last candidate
// and false. limit<1 is treated as 1.
func Retry[T any](limit int, draw func() T, accept func(T) bool) (T, bool) {
	if limit < 1 {
		limit = 1
	}
	var candidate T
	for attempt := 0; attempt < limit; attempt++ {
		candidate = draw()
		if accept(candidate) {
			return candidate, true
		}
	}

	return candidate, false
}

// RetryOr is Retry with a hard constraint: when no candidate is accepted
// within limit draws, fallback's result is returned instead. fallback must
// construct a value that satisfies the constraint by itself.
func RetryOr[T any](limit int, draw func() T, accept func(T) bool, fallback func() T) T {
	if v, ok := Retry(limit, draw, accept); ok {
		return v
	}

	return fallback()
}
