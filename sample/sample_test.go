package sample_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
)

func TestIntInBoundsAndFormula(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		next     float64
		min, max int
		want     int
	}{
		{"low end", 0, 2, 9, 2},
		{"high end", 0.999999, 2, 9, 9},
		{"middle", 0.5, 0, 9, 5},
		{"single value", 0.7, 4, 4, 4},
		{"swapped bounds", 0, 9, 2, 2},
		{"negative range", 0.25, -4, 3, -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scripted{vals: []float64{tc.next}}
			assert.Equal(t, tc.want, sample.IntIn(src, tc.min, tc.max))
			assert.Equal(t, 1, src.n, "IntIn must consume exactly one draw")
		})
	}
}

func TestIntInCoversRange(t *testing.T) {
	t.Parallel()

	g := prng.New(7)
	seen := map[int]int{}
	for i := 0; i < 5000; i++ {
		v := sample.IntIn(g, 2, 9)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 9)
		seen[v]++
	}
	assert.Len(t, seen, 8)
}

func TestShuffleIsPermutationAndDeterministic(t *testing.T) {
	t.Parallel()

	base := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	a := slices.Clone(base)
	b := slices.Clone(base)
	sample.Shuffle(prng.New(99), a)
	sample.Shuffle(prng.New(99), b)
	assert.Equal(t, a, b)

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	assert.Equal(t, base, sorted)
}

func TestShuffleDrawOrder(t *testing.T) {
	t.Parallel()

	// With every draw at 0 each position i swaps with index 0, walking the
	// first element to the back: [a b c d] -> [b c d a].
	src := &scripted{vals: []float64{0}}
	items := []string{"a", "b", "c", "d"}
	sample.Shuffle(src, items)
	assert.Equal(t, []string{"b", "c", "d", "a"}, items)
	assert.Equal(t, 3, src.n)
}

func TestPermAndChooseIndices(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sample.Perm(prng.New(1), 0))
	assert.Empty(t, sample.Perm(prng.New(1), -3))

	p := sample.Perm(prng.New(1), 6)
	sorted := slices.Clone(p)
	slices.Sort(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sorted)

	idx := sample.ChooseIndices(prng.New(5), 10, 3)
	require.Len(t, idx, 3)
	assert.True(t, slices.IsSorted(idx))
	assert.Len(t, slices.Compact(slices.Clone(idx)), 3)

	assert.Len(t, sample.ChooseIndices(prng.New(5), 3, 10), 3)
	assert.Empty(t, sample.ChooseIndices(prng.New(5), 3, -1))
}

func TestBalancedCounts(t *testing.T) {
	t.Parallel()

	kinds := []string{"add", "sub", "mul"}
	for _, n := range []int{3, 7, 12, 20} {
		got := sample.Balanced(prng.New(uint32(n)), kinds, n)
		require.Len(t, got, n)
		counts := map[string]int{}
		for _, k := range got {
			counts[k]++
		}
		for i, k := range kinds {
			want := n / len(kinds)
			if i < n%len(kinds) {
				want++
			}
			assert.Equal(t, want, counts[k], "n=%d kind=%s", n, k)
		}
	}

	assert.Empty(t, sample.Balanced[string](prng.New(1), nil, 5))
	assert.Empty(t, sample.Balanced(prng.New(1), kinds, 0))
}

func TestWeighted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, sample.Weighted(prng.New(1), []int{0, 0}))
	assert.Equal(t, 0, sample.Weighted(prng.New(1), nil))

	g := prng.New(3)
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[sample.Weighted(g, []int{1, 0, 3})]++
	}
	assert.Zero(t, counts[1], "zero weight must never be picked")
	assert.Greater(t, counts[2], counts[0])
}

func TestPickAndChance(t *testing.T) {
	t.Parallel()

	src := &scripted{vals: []float64{0.99}}
	assert.Equal(t, "c", sample.Pick(src, []string{"a", "b", "c"}))
	assert.Panics(t, func() { sample.Pick(src, []int{}) })

	assert.True(t, sample.Chance(&scripted{vals: []float64{0.1}}, 0.5))
	assert.False(t, sample.Chance(&scripted{vals: []float64{0.9}}, 0.5))
}

func TestWithEdgeCases(t *testing.T) {
	t.Parallel()

	var order []string
	got := sample.WithEdgeCases(5, 2,
		func(i int) string { order = append(order, "edge"); return "e" },
		func(i int) string { order = append(order, "gen"); return "g" },
	)
	assert.Equal(t, []string{"e", "e", "g", "g", "g"}, got)
	assert.Equal(t, []string{"edge", "edge", "gen", "gen", "gen"}, order)

	all := sample.WithEdgeCases(2, 9, func(int) int { return 1 }, func(int) int { return 0 })
	assert.Equal(t, []int{1, 1}, all)
	none := sample.WithEdgeCases(2, -1, func(int) int { return 1 }, func(int) int { return 0 })
	assert.Equal(t, []int{0, 0}, none)
	assert.Empty(t, sample.WithEdgeCases(0, 1, func(int) int { return 1 }, func(int) int { return 0 }))
}

func TestRetrySoftPolicy(t *testing.T) {
	t.Parallel()

	calls := 0
	v, ok := sample.Retry(5, func() int { calls++; return calls }, func(v int) bool { return v == 3 })
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, calls)

	calls = 0
	v, ok = sample.Retry(4, func() int { calls++; return calls }, func(int) bool { return false })
	assert.False(t, ok)
	assert.Equal(t, 4, v, "soft policy keeps the last candidate")
	assert.Equal(t, 4, calls, "ceiling bounds the work")

	calls = 0
	_, _ = sample.Retry(0, func() int { calls++; return calls }, func(int) bool { return false })
	assert.Equal(t, 1, calls)
}

func TestRetryOrHardPolicy(t *testing.T) {
	t.Parallel()

	v := sample.RetryOr(3, func() int { return 4 }, func(v int) bool { return v%2 == 1 }, func() int { return 7 })
	assert.Equal(t, 7, v)

	v = sample.RetryOr(3, func() int { return 5 }, func(v int) bool { return v%2 == 1 }, func() int {
		t.Fatal("fallback must not run when a candidate is accepted")
		return 0
	})
	assert.Equal(t, 5, v)
}

func TestUnique(t *testing.T) {
	t.Parallel()

	var u sample.Unique[string]
	assert.False(t, u.Seen("7 ÷ 2"))
	u.Add("7 ÷ 2")
	u.Add("7 ÷ 2")
	assert.True(t, u.Seen("7 ÷ 2"))
	assert.Equal(t, 1, u.Len())
}
