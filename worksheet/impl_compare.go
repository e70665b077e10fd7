// SPDX-License-Identifier: MIT
// Package: worksheet
//
// impl_compare.go - fill in <, = or > between two numbers or expressions.
//
// Edge cases: items 0..Equal-1 are equalities, built by sample.WithEdgeCases
// before the generic items; "=" is never left to chance.

package worksheet

import (
	"fmt"
	"strconv"

	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
	"github.com/nobu-k/100-math-sub004/seed"
)

// CompareMode selects what appears on each side.
type CompareMode string

// Compare modes.
const (
	CompareNumber CompareMode = "number"
	CompareExpr   CompareMode = "expr"
	CompareMixed  CompareMode = ModeMixed
)

const (
	defaultCompareCount = 10
	defaultCompareMax   = 100
	defaultCompareEqual = 2
	minCompareMax       = 10
	maxCompareMax       = 10000
	paramCompareMax     = "max"
	paramCompareEqual   = "equal"
)

// CompareOptions configures GenerateCompare.
type CompareOptions struct {
	Count int
	Mode  CompareMode
	// Max bounds the value of each side.
	Max int
	// Equal is how many leading items are guaranteed equality cases.
	// A negative value disables them.
	Equal int
}

func (o CompareOptions) normalize() CompareOptions {
	o.Count = normalizeCount(o.Count, defaultCompareCount)
	switch o.Mode {
	case CompareNumber, CompareExpr, CompareMixed:
	default:
		o.Mode = CompareMixed
	}
	if o.Max == 0 {
		o.Max = defaultCompareMax
	}
	o.Max = clamp(o.Max, minCompareMax, maxCompareMax)
	if o.Equal == 0 {
		o.Equal = defaultCompareEqual
	}
	o.Equal = clamp(o.Equal, 0, o.Count)
	return o
}

func parseCompareOptions(p Params) CompareOptions {
	return CompareOptions{
		Count: p.Int(ParamCount, 0),
		Mode:  CompareMode(p.String(ParamMode, string(CompareMixed))),
		Max:   p.Int(paramCompareMax, 0),
		Equal: p.Int(paramCompareEqual, 0),
	}
}

// Expr is a number (Op == "") or a two-term sum/difference.
type Expr struct {
	A  int    `json:"a"`
	B  int    `json:"b,omitempty"`
	Op string `json:"op,omitempty"`
}

// Value evaluates the expression.
func (e Expr) Value() int {
	switch e.Op {
	case "+":
		return e.A + e.B
	case "-":
		return e.A - e.B
	}
	return e.A
}

// String renders the expression.
func (e Expr) String() string {
	if e.Op == "" {
		return strconv.Itoa(e.A)
	}
	return fmt.Sprintf("%d %s %d", e.A, e.Op, e.B)
}

// CompareProblem is "Left □ Right"; Relation fills the box.
type CompareProblem struct {
	Mode     CompareMode `json:"mode"`
	Left     Expr        `json:"left"`
	Right    Expr        `json:"right"`
	Relation string      `json:"relation"`
}

// Kind implements Problem.
func (p CompareProblem) Kind() string { return string(p.Mode) }

// Question implements Problem.
func (p CompareProblem) Question() string {
	return fmt.Sprintf("%s □ %s", p.Left, p.Right)
}

// Answer implements Problem.
func (p CompareProblem) Answer() string { return p.Relation }

// Check implements Problem.
func (p CompareProblem) Check() error {
	l, r := p.Left.Value(), p.Right.Value()
	if l < 0 || r < 0 {
		return checkf("compare: negative side")
	}
	if want := relation(l, r); want != p.Relation {
		return checkf("compare: %s vs %s is %q, not %q", p.Left, p.Right, want, p.Relation)
	}
	return nil
}

func relation(l, r int) string {
	switch {
	case l < r:
		return "<"
	case l > r:
		return ">"
	}
	return "="
}

// GenerateCompare returns opts.Count comparison problems for s, the first
// opts.Equal of which are equalities.
func GenerateCompare(s seed.Seed, opts CompareOptions) []CompareProblem {
	opts = opts.normalize()
	rng := prng.New(s.Uint32())

	kinds := []CompareMode{opts.Mode}
	if opts.Mode == CompareMixed {
		kinds = []CompareMode{CompareNumber, CompareExpr}
	}
	modes := sample.Balanced(rng, kinds, opts.Count)

	return sample.WithEdgeCases(opts.Count, opts.Equal,
		func(i int) CompareProblem { return drawEqualCompare(rng, modes[i], opts.Max) },
		func(i int) CompareProblem { return drawCompare(rng, modes[i], opts.Max) },
	)
}

func drawCompare(rng prng.Source, mode CompareMode, hi int) CompareProblem {
	var left, right Expr
	if mode == CompareExpr {
		left, right = drawExpr(rng, sample.IntIn(rng, 0, hi)), drawExpr(rng, sample.IntIn(rng, 0, hi))
	} else {
		left, right = Expr{A: sample.IntIn(rng, 0, hi)}, Expr{A: sample.IntIn(rng, 0, hi)}
	}
	return CompareProblem{Mode: mode, Left: left, Right: right, Relation: relation(left.Value(), right.Value())}
}

// drawEqualCompare builds two sides with the same value. For expressions the
// right side is re-drawn (soft retry) so the two sides are not written
// identically when another spelling exists.
func drawEqualCompare(rng prng.Source, mode CompareMode, hi int) CompareProblem {
	v := sample.IntIn(rng, 1, hi)
	if mode != CompareExpr {
		return CompareProblem{Mode: mode, Left: Expr{A: v}, Right: Expr{A: v}, Relation: "="}
	}

	left := drawExpr(rng, v)
	right, _ := sample.Retry(sample.DefaultAttempts,
		func() Expr { return drawExpr(rng, v) },
		func(e Expr) bool { return e != left },
	)
	return CompareProblem{Mode: mode, Left: left, Right: right, Relation: "="}
}

// drawExpr returns a sum or difference of non-negative terms worth v.
// Sums split v; differences add a subtrahend on top of it.
func drawExpr(rng prng.Source, v int) Expr {
	if sample.Chance(rng, 0.5) {
		a := sample.IntIn(rng, 0, v)
		return Expr{A: a, B: v - a, Op: "+"}
	}
	b := sample.IntIn(rng, 1, max(1, v))
	return Expr{A: v + b, B: b, Op: "-"}
}
