// SPDX-License-Identifier: MIT
// Package: worksheet
//
// impl_counting.go - factorials, arrangements (nPr) and selections (nCr).
//
// n stays within [2, MaxN] (MaxN ≤ 10), so every count fits comfortably in
// an int64 and no big-integer arithmetic is needed.

package worksheet

import (
	"fmt"
	"strconv"

	"github.com/nobu-k/100-math-sub004/numtheory"
	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
	"github.com/nobu-k/100-math-sub004/seed"
)

// CountKind selects the counting problem type.
type CountKind string

// Counting modes.
const (
	CountFactorial CountKind = "factorial"
	CountPerm      CountKind = "perm"
	CountComb      CountKind = "comb"
	CountMixed     CountKind = ModeMixed
)

const (
	defaultCountingCount = 8
	defaultCountingMaxN  = 8
	minCountingMaxN      = 3
	maxCountingMaxN      = 10
	paramCountingMaxN    = "n"
)

// CountingOptions configures GenerateCounting.
type CountingOptions struct {
	Count int
	Mode  CountKind
	// MaxN bounds n.
	MaxN int
}

func (o CountingOptions) normalize() CountingOptions {
	o.Count = normalizeCount(o.Count, defaultCountingCount)
	switch o.Mode {
	case CountFactorial, CountPerm, CountComb, CountMixed:
	default:
		o.Mode = CountMixed
	}
	if o.MaxN == 0 {
		o.MaxN = defaultCountingMaxN
	}
	o.MaxN = clamp(o.MaxN, minCountingMaxN, maxCountingMaxN)
	return o
}

func parseCountingOptions(p Params) CountingOptions {
	return CountingOptions{
		Count: p.Int(ParamCount, 0),
		Mode:  CountKind(p.String(ParamMode, string(CountMixed))),
		MaxN:  p.Int(paramCountingMaxN, 0),
	}
}

// CountingProblem is a counting question with its exact count.
type CountingProblem struct {
	Type   CountKind `json:"type"`
	N      int       `json:"n"`
	R      int       `json:"r,omitempty"`
	Result int64     `json:"result"`
}

// Kind implements Problem.
func (p CountingProblem) Kind() string { return string(p.Type) }

// Question implements Problem.
func (p CountingProblem) Question() string {
	switch p.Type {
	case CountPerm:
		return fmt.Sprintf("In how many orders can %d of %d different cards be laid in a row?", p.R, p.N)
	case CountComb:
		return fmt.Sprintf("In how many ways can %d of %d pupils be chosen for a team?", p.R, p.N)
	}
	return fmt.Sprintf("In how many orders can %d runners finish a race? (%d!)", p.N, p.N)
}

// Answer implements Problem.
func (p CountingProblem) Answer() string {
	return strconv.FormatInt(p.Result, 10)
}

// Check implements Problem.
func (p CountingProblem) Check() error {
	want, err := countFor(p.Type, p.N, p.R)
	if err != nil {
		return fmt.Errorf("counting: %v: %w", err, ErrCheckFailed)
	}
	if want != p.Result {
		return checkf("counting %s n=%d r=%d: %d ≠ %d", p.Type, p.N, p.R, p.Result, want)
	}
	if p.Type != CountFactorial && (p.R < 1 || p.R >= p.N) {
		return checkf("counting: r=%d outside [1,%d)", p.R, p.N)
	}
	return nil
}

func countFor(kind CountKind, n, r int) (int64, error) {
	switch kind {
	case CountFactorial:
		return numtheory.Factorial(n)
	case CountPerm:
		return numtheory.Permutations(n, r)
	case CountComb:
		return numtheory.Combinations(n, r)
	}
	return 0, fmt.Errorf("unknown kind %q", kind)
}

// GenerateCounting returns opts.Count counting problems for s.
func GenerateCounting(s seed.Seed, opts CountingOptions) []CountingProblem {
	opts = opts.normalize()
	rng := prng.New(s.Uint32())

	kinds := []CountKind{opts.Mode}
	if opts.Mode == CountMixed {
		kinds = []CountKind{CountFactorial, CountPerm, CountComb}
	}
	types := sample.Balanced(rng, kinds, opts.Count)

	var seen sample.Unique[[3]int]
	out := make([]CountingProblem, 0, opts.Count)
	for _, kind := range types {
		p, _ := sample.Retry(sample.DefaultAttempts,
			func() CountingProblem { return drawCounting(rng, kind, opts.MaxN) },
			func(p CountingProblem) bool { return !seen.Seen(p.key()) },
		)
		seen.Add(p.key())
		out = append(out, p)
	}

	return out
}

func (p CountingProblem) key() [3]int {
	t := 0
	switch p.Type {
	case CountPerm:
		t = 1
	case CountComb:
		t = 2
	}
	return [3]int{t, p.N, p.R}
}

func drawCounting(rng prng.Source, kind CountKind, maxN int) CountingProblem {
	p := CountingProblem{Type: kind}
	if kind == CountFactorial {
		p.N = sample.IntIn(rng, 2, maxN)
	} else {
		p.N = sample.IntIn(rng, 3, maxN)
		p.R = sample.IntIn(rng, 1, p.N-1)
	}
	result, err := countFor(kind, p.N, p.R)
	if err != nil {
		// unreachable: maxN ≤ maxCountingMaxN < numtheory.MaxCountN
		panic(err)
	}
	p.Result = result

	return p
}
