// SPDX-License-Identifier: MIT
// Package: sample
//
// shuffle.go - seeded Fisher–Yates and the helpers built on it.
//
// Order of draws: i runs from n-1 down to 1, one draw per i. This matches the
// classic textbook loop so a trajectory produces the same permutation in any
// implementation that follows it.

package sample

import (
	"sort"

	"github.com/nobu-k/100-math-sub004/prng"
)

// Shuffle permutes items in place using src.
//
// Complexity: O(n) time, O(1) extra space, n-1 draws.
func Shuffle[T any](src prng.Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := IntIn(src, 0, i)
		items[i], items[j] = items[j], items[i]
	}
}

// Perm returns a permutation of 0..n-1. n<=0 yields an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Perm(src prng.Source, n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(src, p)

	return p
}

// ChooseIndices picks k distinct indices out of 0..n-1 and returns them in
// ascending order. k is clamped to [0,n].
func ChooseIndices(src prng.Source, n, k int) []int {
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	chosen := Perm(src, n)[:k]
	sort.Ints(chosen)

	return chosen
}
