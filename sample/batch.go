package sample

// WithEdgeCases builds a batch of n items where indices 0..k-1 come from edge
// and the remaining indices from generic, called in index order. It is how a
// topic guarantees that a boundary condition (say, left equals right) is on
// the page instead of hoping a random draw produces it. k is clamped to [0,n].
func WithEdgeCases[T any](n, k int, edge func(i int) T, generic func(i int) T) []T {
	if n <= 0 {
		return []T{}
	}
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}

	out := make([]T, 0, n)
	for i := 0; i < k; i++ {
		out = append(out, edge(i))
	}
	for i := k; i < n; i++ {
		out = append(out, generic(i))
	}

	return out
}
