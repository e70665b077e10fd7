// SPDX-License-Identifier: MIT
// Package: worksheet
//
// impl_division.go - division with and without remainder.
//
// Model:
//   - divisor  ∈ [2,9], quotient ∈ [1,9]
//   - exact:     remainder = 0
//   - remainder: remainder ∈ [1, divisor-1]
//   - dividend = divisor·quotient + remainder
//
// Sampling:
//   - kinds come from sample.Balanced, so mixed sheets always hold both.
//   - (dividend, divisor) pairs are kept unique with a soft retry: the
//     exact table has only 72 pairs, so once a large batch exhausts it a
//     repeat is accepted rather than looping.

package worksheet

import (
	"fmt"

	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
	"github.com/nobu-k/100-math-sub004/seed"
)

// DivisionMode selects which division kinds may appear.
type DivisionMode string

// Division modes.
const (
	DivisionExact     DivisionMode = "exact"
	DivisionRemainder DivisionMode = "remainder"
	DivisionMixed     DivisionMode = ModeMixed
)

const (
	defaultDivisionCount = 12
	minDivisor           = 2
	maxDivisor           = 9
	minQuotient          = 1
	maxQuotient          = 9
)

// DivisionOptions configures GenerateDivision.
type DivisionOptions struct {
	Count int
	Mode  DivisionMode
}

func (o DivisionOptions) normalize() DivisionOptions {
	o.Count = normalizeCount(o.Count, defaultDivisionCount)
	switch o.Mode {
	case DivisionExact, DivisionRemainder, DivisionMixed:
	default:
		o.Mode = DivisionMixed
	}
	return o
}

func (o DivisionOptions) kinds() []DivisionMode {
	if o.Mode == DivisionMixed {
		return []DivisionMode{DivisionExact, DivisionRemainder}
	}
	return []DivisionMode{o.Mode}
}

func parseDivisionOptions(p Params) DivisionOptions {
	return DivisionOptions{
		Count: p.Int(ParamCount, 0),
		Mode:  DivisionMode(p.String(ParamMode, string(DivisionMixed))),
	}
}

// DivisionProblem is dividend ÷ divisor = quotient r remainder.
type DivisionProblem struct {
	Dividend  int `json:"dividend"`
	Divisor   int `json:"divisor"`
	Quotient  int `json:"quotient"`
	Remainder int `json:"remainder"`
}

// Kind implements Problem.
func (p DivisionProblem) Kind() string {
	if p.Remainder == 0 {
		return string(DivisionExact)
	}
	return string(DivisionRemainder)
}

// Question implements Problem.
func (p DivisionProblem) Question() string {
	return fmt.Sprintf("%d ÷ %d =", p.Dividend, p.Divisor)
}

// Answer implements Problem.
func (p DivisionProblem) Answer() string {
	if p.Remainder == 0 {
		return fmt.Sprintf("%d", p.Quotient)
	}
	return fmt.Sprintf("%d r %d", p.Quotient, p.Remainder)
}

// Check implements Problem.
func (p DivisionProblem) Check() error {
	if p.Divisor*p.Quotient+p.Remainder != p.Dividend {
		return checkf("division %d ≠ %d·%d+%d", p.Dividend, p.Divisor, p.Quotient, p.Remainder)
	}
	if p.Remainder < 0 || p.Remainder >= p.Divisor {
		return checkf("division remainder %d not in [0,%d)", p.Remainder, p.Divisor)
	}
	if p.Divisor < minDivisor || p.Divisor > maxDivisor || p.Quotient < minQuotient || p.Quotient > maxQuotient {
		return checkf("division operands %d, %d out of range", p.Divisor, p.Quotient)
	}
	return nil
}

// GenerateDivision returns opts.Count division problems for s.
func GenerateDivision(s seed.Seed, opts DivisionOptions) []DivisionProblem {
	opts = opts.normalize()
	rng := prng.New(s.Uint32())

	kinds := sample.Balanced(rng, opts.kinds(), opts.Count)
	var seen sample.Unique[[2]int]
	out := make([]DivisionProblem, 0, opts.Count)
	for _, kind := range kinds {
		p, _ := sample.Retry(sample.MaxAttempts,
			func() DivisionProblem { return drawDivision(rng, kind) },
			func(p DivisionProblem) bool { return !seen.Seen([2]int{p.Dividend, p.Divisor}) },
		)
		seen.Add([2]int{p.Dividend, p.Divisor})
		out = append(out, p)
	}

	return out
}

func drawDivision(rng prng.Source, kind DivisionMode) DivisionProblem {
	divisor := sample.IntIn(rng, minDivisor, maxDivisor)
	quotient := sample.IntIn(rng, minQuotient, maxQuotient)
	remainder := 0
	if kind == DivisionRemainder {
		remainder = sample.IntIn(rng, 1, divisor-1)
	}

	return DivisionProblem{
		Dividend:  divisor*quotient + remainder,
		Divisor:   divisor,
		Quotient:  quotient,
		Remainder: remainder,
	}
}
