// SPDX-License-Identifier: MIT
// Package: worksheet
//
// impl_area.go - area and perimeter of rectangles, squares and triangles.
//
// Triangles use base·height/2, which must be a whole number: base·height even
// is a HARD constraint. Rejected draws fall back to an even base.

package worksheet

import (
	"fmt"

	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
	"github.com/nobu-k/100-math-sub004/seed"
)

// Shape selects the figure.
type Shape string

// Area modes.
const (
	ShapeRect     Shape = "rect"
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapeMixed    Shape = ModeMixed
)

const (
	defaultAreaCount = 8
	defaultAreaSide  = 20
	minAreaSide      = 4
	maxAreaSide      = 100
	paramAreaSide    = "max"
)

// AreaOptions configures GenerateArea.
type AreaOptions struct {
	Count int
	Mode  Shape
	// MaxSide bounds every length.
	MaxSide int
}

func (o AreaOptions) normalize() AreaOptions {
	o.Count = normalizeCount(o.Count, defaultAreaCount)
	switch o.Mode {
	case ShapeRect, ShapeSquare, ShapeTriangle, ShapeMixed:
	default:
		o.Mode = ShapeMixed
	}
	if o.MaxSide == 0 {
		o.MaxSide = defaultAreaSide
	}
	o.MaxSide = clamp(o.MaxSide, minAreaSide, maxAreaSide)
	return o
}

func parseAreaOptions(p Params) AreaOptions {
	return AreaOptions{
		Count:   p.Int(ParamCount, 0),
		Mode:    Shape(p.String(ParamMode, string(ShapeMixed))),
		MaxSide: p.Int(paramAreaSide, 0),
	}
}

// AreaProblem holds the figure's dimensions and answers. For triangles Width
// is the base, Height the height, and Perimeter is not asked (0).
type AreaProblem struct {
	Shape     Shape `json:"shape"`
	Width     int   `json:"width"`
	Height    int   `json:"height"`
	Area      int   `json:"area"`
	Perimeter int   `json:"perimeter,omitempty"`
}

// Kind implements Problem.
func (p AreaProblem) Kind() string { return string(p.Shape) }

// Question implements Problem.
func (p AreaProblem) Question() string {
	switch p.Shape {
	case ShapeSquare:
		return fmt.Sprintf("A square has sides of %d cm. Find its area and perimeter.", p.Width)
	case ShapeTriangle:
		return fmt.Sprintf("A triangle has a base of %d cm and a height of %d cm. Find its area.", p.Width, p.Height)
	}
	return fmt.Sprintf("A rectangle is %d cm by %d cm. Find its area and perimeter.", p.Width, p.Height)
}

// Answer implements Problem.
func (p AreaProblem) Answer() string {
	if p.Shape == ShapeTriangle {
		return fmt.Sprintf("%d cm²", p.Area)
	}
	return fmt.Sprintf("%d cm², %d cm", p.Area, p.Perimeter)
}

// Check implements Problem.
func (p AreaProblem) Check() error {
	if p.Width < 1 || p.Height < 1 {
		return checkf("area: non-positive side")
	}
	switch p.Shape {
	case ShapeTriangle:
		if (p.Width*p.Height)%2 != 0 || p.Area*2 != p.Width*p.Height {
			return checkf("area: triangle %d×%d/2 ≠ %d", p.Width, p.Height, p.Area)
		}
		if p.Perimeter != 0 {
			return checkf("area: triangle perimeter set")
		}
	case ShapeSquare:
		if p.Width != p.Height {
			return checkf("area: square %d×%d", p.Width, p.Height)
		}
		fallthrough
	case ShapeRect:
		if p.Area != p.Width*p.Height || p.Perimeter != 2*(p.Width+p.Height) {
			return checkf("area: %s %d×%d area %d perimeter %d", p.Shape, p.Width, p.Height, p.Area, p.Perimeter)
		}
	default:
		return checkf("area: unknown shape %q", p.Shape)
	}
	return nil
}

// GenerateArea returns opts.Count area problems for s.
func GenerateArea(s seed.Seed, opts AreaOptions) []AreaProblem {
	opts = opts.normalize()
	rng := prng.New(s.Uint32())

	kinds := []Shape{opts.Mode}
	if opts.Mode == ShapeMixed {
		kinds = []Shape{ShapeRect, ShapeSquare, ShapeTriangle}
	}
	shapes := sample.Balanced(rng, kinds, opts.Count)

	var seen sample.Unique[AreaProblem]
	out := make([]AreaProblem, 0, opts.Count)
	for _, shape := range shapes {
		p, _ := sample.Retry(sample.DefaultAttempts,
			func() AreaProblem { return drawArea(rng, shape, opts.MaxSide) },
			func(p AreaProblem) bool { return !seen.Seen(p) },
		)
		seen.Add(p)
		out = append(out, p)
	}

	return out
}

func drawArea(rng prng.Source, shape Shape, maxSide int) AreaProblem {
	switch shape {
	case ShapeSquare:
		side := sample.IntIn(rng, 2, maxSide)
		return AreaProblem{Shape: shape, Width: side, Height: side, Area: side * side, Perimeter: 4 * side}
	case ShapeTriangle:
		bh := sample.RetryOr(sample.DefaultAttempts,
			func() [2]int { return [2]int{sample.IntIn(rng, 2, maxSide), sample.IntIn(rng, 2, maxSide)} },
			func(c [2]int) bool { return (c[0]*c[1])%2 == 0 },
			func() [2]int { return [2]int{2 * sample.IntIn(rng, 1, maxSide/2), sample.IntIn(rng, 2, maxSide)} },
		)
		return AreaProblem{Shape: shape, Width: bh[0], Height: bh[1], Area: bh[0] * bh[1] / 2}
	}

	w, _ := sample.Retry(sample.DefaultAttempts,
		func() [2]int { return [2]int{sample.IntIn(rng, 2, maxSide), sample.IntIn(rng, 2, maxSide)} },
		func(c [2]int) bool { return c[0] != c[1] },
	)
	return AreaProblem{Shape: ShapeRect, Width: w[0], Height: w[1], Area: w[0] * w[1], Perimeter: 2 * (w[0] + w[1])}
}
