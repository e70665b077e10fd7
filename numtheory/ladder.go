// SPDX-License-Identifier: MIT
// Package: numtheory
//
// ladder.go - common-factor step ladder ("box division") for GCD/LCM.
//
// Procedure:
//   - find the smallest d ≥ 2 dividing both current values;
//   - record d, divide both values by it, repeat;
//   - stop when the pair is coprime.
//
// Invariants (checked by Verify):
//   - prod(Divisors)·Rest[k] == original[k] for k in {0,1}
//   - prod(Divisors) == GCD(a,b)
//   - prod(Divisors)·Rest[0]·Rest[1] == LCM(a,b)

package numtheory

import "fmt"

const methodLadder = "Ladder"

// LadderStep is one rung: the divisor and the pair after dividing by it.
type LadderStep struct {
	Divisor int    `json:"divisor"`
	Pair    [2]int `json:"pair"`
}

// LadderResult is the full ladder for a pair of positive integers.
type LadderResult struct {
	A        int          `json:"a"`
	B        int          `json:"b"`
	Steps    []LadderStep `json:"steps"`
	Divisors []int        `json:"divisors"`
	Rest     [2]int       `json:"rest"`
}

// Ladder builds the smallest-divisor-first common-factor ladder of a and b.
// Both must be ≥1; otherwise ErrNonPositive is returned.
//
// Complexity: O(min(a,b)) trial divisors.
func Ladder(a, b int) (LadderResult, error) {
	if a < 1 {
		return LadderResult{}, fmt.Errorf("%s: a=%d: %w", methodLadder, a, ErrNonPositive)
	}
	if b < 1 {
		return LadderResult{}, fmt.Errorf("%s: b=%d: %w", methodLadder, b, ErrNonPositive)
	}

	res := LadderResult{A: a, B: b, Steps: []LadderStep{}, Divisors: []int{}}
	x, y := a, b
	d := 2
	for d <= x && d <= y {
		if x%d == 0 && y%d == 0 {
			x, y = x/d, y/d
			res.Divisors = append(res.Divisors, d)
			res.Steps = append(res.Steps, LadderStep{Divisor: d, Pair: [2]int{x, y}})
			// the same d may divide again; do not advance
			continue
		}
		d++
	}
	res.Rest = [2]int{x, y}

	return res, nil
}

// GCD is the product of the recorded divisors (1 for a coprime pair).
func (r LadderResult) GCD() int {
	return product(r.Divisors)
}

// LCM is the product of the divisors and the remaining pair.
func (r LadderResult) LCM() int {
	return r.GCD() * r.Rest[0] * r.Rest[1]
}

// Verify checks the ladder invariants against the original pair.
func (r LadderResult) Verify() error {
	g := r.GCD()
	if g*r.Rest[0] != r.A || g*r.Rest[1] != r.B {
		return fmt.Errorf("%s: divisors %v and rest %v do not rebuild (%d,%d)", methodLadder, r.Divisors, r.Rest, r.A, r.B)
	}
	if GCD(r.Rest[0], r.Rest[1]) != 1 {
		return fmt.Errorf("%s: rest %v still shares a factor", methodLadder, r.Rest)
	}
	if g != GCD(r.A, r.B) || r.LCM() != LCM(r.A, r.B) {
		return fmt.Errorf("%s: gcd/lcm mismatch for (%d,%d)", methodLadder, r.A, r.B)
	}
	for i := 1; i < len(r.Divisors); i++ {
		if r.Divisors[i] < r.Divisors[i-1] {
			return fmt.Errorf("%s: divisors %v not smallest-first", methodLadder, r.Divisors)
		}
	}

	return nil
}

func product(xs []int) int {
	p := 1
	for _, x := range xs {
		p *= x
	}
	return p
}
