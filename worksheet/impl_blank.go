// SPDX-License-Identifier: MIT
// Package: worksheet
//
// impl_blank.go - addition/subtraction with one blank slot.
//
// Model:
//   - add: left + right = result, result ≤ Max
//   - sub: left − right = result, result ≥ 0
//   - exactly one of left/right/result is blank (nil); Solution fills it.
//
// Sampling:
//   - ops from sample.Balanced; blank slot from sample.Pick (one draw).
//   - soft uniqueness on the printed question.

package worksheet

import (
	"fmt"
	"strconv"

	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
	"github.com/nobu-k/100-math-sub004/seed"
)

// BlankMode selects the operations used.
type BlankMode string

// Blank modes.
const (
	BlankAdd   BlankMode = "add"
	BlankSub   BlankMode = "sub"
	BlankMixed BlankMode = ModeMixed
)

// BlankSlot names the position left empty.
type BlankSlot string

// Blank slots.
const (
	SlotLeft   BlankSlot = "left"
	SlotRight  BlankSlot = "right"
	SlotResult BlankSlot = "result"
)

var blankSlots = []BlankSlot{SlotLeft, SlotRight, SlotResult}

const (
	defaultBlankCount = 12
	defaultBlankMax   = 20
	minBlankMax       = 10
	maxBlankMax       = 1000
	paramBlankMax     = "max"
)

// BlankOptions configures GenerateBlank.
type BlankOptions struct {
	Count int
	Mode  BlankMode
	// Max bounds every number printed on the sheet.
	Max int
}

func (o BlankOptions) normalize() BlankOptions {
	o.Count = normalizeCount(o.Count, defaultBlankCount)
	switch o.Mode {
	case BlankAdd, BlankSub, BlankMixed:
	default:
		o.Mode = BlankMixed
	}
	if o.Max == 0 {
		o.Max = defaultBlankMax
	}
	o.Max = clamp(o.Max, minBlankMax, maxBlankMax)
	return o
}

func parseBlankOptions(p Params) BlankOptions {
	return BlankOptions{
		Count: p.Int(ParamCount, 0),
		Mode:  BlankMode(p.String(ParamMode, string(BlankMixed))),
		Max:   p.Int(paramBlankMax, 0),
	}
}

// BlankProblem is "left op right = result" with one slot missing.
type BlankProblem struct {
	Op       string    `json:"op"`
	Left     *int      `json:"left,omitempty"`
	Right    *int      `json:"right,omitempty"`
	Result   *int      `json:"result,omitempty"`
	Blank    BlankSlot `json:"blank"`
	Solution int       `json:"solution"`
}

// Kind implements Problem.
func (p BlankProblem) Kind() string {
	if p.Op == "-" {
		return string(BlankSub)
	}
	return string(BlankAdd)
}

// Question implements Problem.
func (p BlankProblem) Question() string {
	return fmt.Sprintf("%s %s %s = %s", slotText(p.Left), p.Op, slotText(p.Right), slotText(p.Result))
}

// Answer implements Problem.
func (p BlankProblem) Answer() string {
	return strconv.Itoa(p.Solution)
}

// Check implements Problem: exactly one slot is blank and the solution
// completes the relation.
func (p BlankProblem) Check() error {
	blanks := 0
	for _, v := range []*int{p.Left, p.Right, p.Result} {
		if v == nil {
			blanks++
		}
	}
	if blanks != 1 {
		return checkf("blank: %d empty slots", blanks)
	}

	l, r, res := p.filled()
	switch p.Op {
	case "+":
		if l+r != res {
			return checkf("blank: %d + %d ≠ %d", l, r, res)
		}
	case "-":
		if l-r != res {
			return checkf("blank: %d − %d ≠ %d", l, r, res)
		}
	default:
		return checkf("blank: unknown op %q", p.Op)
	}
	if l < 0 || r < 0 || res < 0 {
		return checkf("blank: negative operand")
	}
	return nil
}

// filled returns the three values with the blank replaced by Solution.
func (p BlankProblem) filled() (int, int, int) {
	get := func(v *int) int {
		if v == nil {
			return p.Solution
		}
		return *v
	}
	return get(p.Left), get(p.Right), get(p.Result)
}

func slotText(v *int) string {
	if v == nil {
		return "□"
	}
	return strconv.Itoa(*v)
}

// GenerateBlank returns opts.Count fill-in-the-blank problems for s.
func GenerateBlank(s seed.Seed, opts BlankOptions) []BlankProblem {
	opts = opts.normalize()
	rng := prng.New(s.Uint32())

	kinds := []BlankMode{opts.Mode}
	if opts.Mode == BlankMixed {
		kinds = []BlankMode{BlankAdd, BlankSub}
	}
	ops := sample.Balanced(rng, kinds, opts.Count)

	var seen sample.Unique[string]
	out := make([]BlankProblem, 0, opts.Count)
	for _, op := range ops {
		p, _ := sample.Retry(sample.DefaultAttempts,
			func() BlankProblem { return drawBlank(rng, op, opts.Max) },
			func(p BlankProblem) bool { return !seen.Seen(p.Question()) },
		)
		seen.Add(p.Question())
		out = append(out, p)
	}

	return out
}

func drawBlank(rng prng.Source, op BlankMode, hi int) BlankProblem {
	var left, right, result int
	sym := "+"
	if op == BlankSub {
		sym = "-"
		left = sample.IntIn(rng, 2, hi)
		right = sample.IntIn(rng, 1, left-1)
		result = left - right
	} else {
		result = sample.IntIn(rng, 2, hi)
		left = sample.IntIn(rng, 1, result-1)
		right = result - left
	}

	p := BlankProblem{Op: sym, Left: &left, Right: &right, Result: &result}
	p.Blank = sample.Pick(rng, blankSlots)
	switch p.Blank {
	case SlotLeft:
		p.Solution, p.Left = left, nil
	case SlotRight:
		p.Solution, p.Right = right, nil
	default:
		p.Solution, p.Result = result, nil
	}

	return p
}
