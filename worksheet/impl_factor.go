// SPDX-License-Identifier: MIT
// Package: worksheet
//
// impl_factor.go - prime factorization of composite numbers.
//
// Sampling policy:
//   - composite is HARD: a prime has no interesting factorization, so after
//     MaxAttempts the fallback constructs the even number 2·⌈Min/2⌉, which
//     lies in [Min, Max] and is composite because Min ≥ 4;
//   - uniqueness is SOFT: it rides in the same accept test, and the fallback
//     may repeat a number when the range holds few composites.

package worksheet

import (
	"strconv"

	"github.com/nobu-k/100-math-sub004/numtheory"
	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
	"github.com/nobu-k/100-math-sub004/seed"
)

const (
	defaultFactorCount = 8
	defaultFactorMin   = 12
	defaultFactorMax   = 100
	minFactorValue     = 4
	maxFactorValue     = 10000
	paramFactorMin     = "min"
	paramFactorMax     = "max"
	kindFactor         = "factor"
)

// FactorOptions configures GenerateFactor.
type FactorOptions struct {
	Count int
	// Min and Max bound the number to factor.
	Min, Max int
}

func (o FactorOptions) normalize() FactorOptions {
	o.Count = normalizeCount(o.Count, defaultFactorCount)
	if o.Min == 0 {
		o.Min = defaultFactorMin
	}
	if o.Max == 0 {
		o.Max = defaultFactorMax
	}
	o.Min = clamp(o.Min, minFactorValue, maxFactorValue-1)
	o.Max = clamp(o.Max, o.Min+1, maxFactorValue)
	return o
}

func parseFactorOptions(p Params) FactorOptions {
	return FactorOptions{
		Count: p.Int(ParamCount, 0),
		Min:   p.Int(paramFactorMin, 0),
		Max:   p.Int(paramFactorMax, 0),
	}
}

// FactorProblem asks for the prime factorization of Number.
type FactorProblem struct {
	Number  int   `json:"number"`
	Factors []int `json:"factors"`
}

// Kind implements Problem.
func (p FactorProblem) Kind() string { return kindFactor }

// Question implements Problem.
func (p FactorProblem) Question() string {
	return strconv.Itoa(p.Number) + " ="
}

// Answer implements Problem.
func (p FactorProblem) Answer() string {
	return numtheory.FormatFactors(p.Factors)
}

// Check implements Problem: factors are prime, non-decreasing, at least two,
// and multiply back to Number.
func (p FactorProblem) Check() error {
	if len(p.Factors) < 2 {
		return checkf("factor: %d is not composite", p.Number)
	}
	prod := 1
	for i, f := range p.Factors {
		if !numtheory.IsPrime(f) {
			return checkf("factor: %d is not prime", f)
		}
		if i > 0 && p.Factors[i-1] > f {
			return checkf("factor: %v not sorted", p.Factors)
		}
		prod *= f
	}
	if prod != p.Number {
		return checkf("factor: product %d ≠ %d", prod, p.Number)
	}
	return nil
}

// GenerateFactor returns opts.Count factorization problems for s.
func GenerateFactor(s seed.Seed, opts FactorOptions) []FactorProblem {
	opts = opts.normalize()
	rng := prng.New(s.Uint32())

	var seen sample.Unique[int]
	out := make([]FactorProblem, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		n := sample.RetryOr(sample.MaxAttempts,
			func() int { return sample.IntIn(rng, opts.Min, opts.Max) },
			func(n int) bool { return !numtheory.IsPrime(n) && !seen.Seen(n) },
			func() int { return evenAtLeast(opts.Min) },
		)
		seen.Add(n)
		out = append(out, newFactorProblem(n))
	}

	return out
}

func evenAtLeast(n int) int {
	return n + n%2
}

func newFactorProblem(n int) FactorProblem {
	factors, err := numtheory.Factorize(n)
	if err != nil {
		// unreachable: n ≥ minFactorValue
		panic(err)
	}
	return FactorProblem{Number: n, Factors: factors}
}
