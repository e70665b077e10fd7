package sample

import "github.com/nobu-k/100-math-sub004/prng"

// Balanced returns n slots filled round-robin from kinds and then shuffled.
// Each kind appears n/len(kinds) times; the first n%len(kinds) kinds appear
// once more. With n >= len(kinds) every kind is guaranteed to appear, which
// independent per-slot draws cannot promise for small batches.
//
// An empty kinds slice or n<=0 yields an empty result.
func Balanced[K any](src prng.Source, kinds []K, n int) []K {
	if len(kinds) == 0 || n <= 0 {
		return []K{}
	}
	slots := make([]K, n)
	for i := range slots {
		slots[i] = kinds[i%len(kinds)]
	}
	Shuffle(src, slots)

	return slots
}

// Weighted returns an index chosen with probability proportional to its
// weight. Non-positive weights are never chosen; if no weight is positive
// the first index is returned. One draw is consumed when a choice exists.
func Weighted(src prng.Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}

	roll := IntIn(src, 0, total-1)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
	}

	return len(weights) - 1
}
