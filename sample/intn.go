package sample

import (
	"math"

	"github.com/nobu-k/100-math-sub004/prng"
)

// IntIn returns an integer uniformly drawn from the closed range [lo,hi],
// consuming exactly one value from src. Reversed bounds are swapped rather
// than rejected.
//
// Complexity: O(1).
func IntIn(src prng.Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := float64(hi - lo + 1)

	return lo + int(math.Floor(src.Next()*span))
}

// Pick returns a uniformly chosen element of items, consuming one draw.
// It panics on an empty slice: callers always pick from fixed, non-empty
// tables.
func Pick[T any](src prng.Source, items []T) T {
	if len(items) == 0 {
		panic("sample: Pick from empty slice")
	}

	return items[IntIn(src, 0, len(items)-1)]
}

// Chance reports true with probability p, consuming one draw.
func Chance(src prng.Source, p float64) bool {
	return src.Next() < p
}
