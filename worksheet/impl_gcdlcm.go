// SPDX-License-Identifier: MIT
// Package: worksheet
//
// impl_gcdlcm.go - GCD/LCM problems solved with the common-factor ladder.
//
// Construction:
//   - pick the target gcd g ∈ [2, min(12, Max/3)];
//   - pick multipliers m ≠ n in [1, Max/g] that are coprime, so that
//     GCD(g·m, g·n) is exactly g;
//   - coprimality is a hard requirement: after MaxAttempts rejected draws
//     the fallback uses consecutive integers k, k+1, which are always coprime.

package worksheet

import (
	"fmt"

	"github.com/nobu-k/100-math-sub004/numtheory"
	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
	"github.com/nobu-k/100-math-sub004/seed"
)

// GCDAsk selects what a GCD/LCM problem asks for.
type GCDAsk string

// GCD/LCM modes.
const (
	AskGCD   GCDAsk = "gcd"
	AskLCM   GCDAsk = "lcm"
	AskMixed GCDAsk = ModeMixed
)

const (
	defaultGCDCount = 6
	defaultGCDMax   = 100
	minGCDMax       = 12
	maxGCDMax       = 999
	maxTargetGCD    = 12
	paramGCDMax     = "max"
)

// GCDOptions configures GenerateGCDLCM.
type GCDOptions struct {
	Count int
	Mode  GCDAsk
	// Max bounds both numbers of a pair.
	Max int
}

func (o GCDOptions) normalize() GCDOptions {
	o.Count = normalizeCount(o.Count, defaultGCDCount)
	switch o.Mode {
	case AskGCD, AskLCM, AskMixed:
	default:
		o.Mode = AskMixed
	}
	if o.Max == 0 {
		o.Max = defaultGCDMax
	}
	o.Max = clamp(o.Max, minGCDMax, maxGCDMax)
	return o
}

func parseGCDOptions(p Params) GCDOptions {
	return GCDOptions{
		Count: p.Int(ParamCount, 0),
		Mode:  GCDAsk(p.String(ParamMode, string(AskMixed))),
		Max:   p.Int(paramGCDMax, 0),
	}
}

// GCDProblem asks for the GCD or LCM of A and B; the ladder is the worked
// solution shown on the answer key.
type GCDProblem struct {
	A      int                    `json:"a"`
	B      int                    `json:"b"`
	Ask    GCDAsk                 `json:"ask"`
	GCD    int                    `json:"gcd"`
	LCM    int                    `json:"lcm"`
	Ladder numtheory.LadderResult `json:"ladder"`
}

// Kind implements Problem.
func (p GCDProblem) Kind() string { return string(p.Ask) }

// Question implements Problem.
func (p GCDProblem) Question() string {
	if p.Ask == AskLCM {
		return fmt.Sprintf("LCM(%d, %d) =", p.A, p.B)
	}
	return fmt.Sprintf("GCD(%d, %d) =", p.A, p.B)
}

// Answer implements Problem.
func (p GCDProblem) Answer() string {
	if p.Ask == AskLCM {
		return fmt.Sprintf("%d", p.LCM)
	}
	return fmt.Sprintf("%d", p.GCD)
}

// Check implements Problem.
func (p GCDProblem) Check() error {
	if p.GCD != numtheory.GCD(p.A, p.B) {
		return checkf("gcd(%d,%d) ≠ %d", p.A, p.B, p.GCD)
	}
	if p.LCM != numtheory.LCM(p.A, p.B) {
		return checkf("lcm(%d,%d) ≠ %d", p.A, p.B, p.LCM)
	}
	if p.Ladder.A != p.A || p.Ladder.B != p.B {
		return checkf("ladder built for (%d,%d), problem is (%d,%d)", p.Ladder.A, p.Ladder.B, p.A, p.B)
	}
	if err := p.Ladder.Verify(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrCheckFailed)
	}
	if p.Ask != AskGCD && p.Ask != AskLCM {
		return checkf("unknown ask %q", p.Ask)
	}
	return nil
}

// GenerateGCDLCM returns opts.Count GCD/LCM problems for s.
func GenerateGCDLCM(s seed.Seed, opts GCDOptions) []GCDProblem {
	opts = opts.normalize()
	rng := prng.New(s.Uint32())

	kinds := []GCDAsk{opts.Mode}
	if opts.Mode == AskMixed {
		kinds = []GCDAsk{AskGCD, AskLCM}
	}
	asks := sample.Balanced(rng, kinds, opts.Count)

	var seen sample.Unique[[2]int]
	out := make([]GCDProblem, 0, opts.Count)
	for _, ask := range asks {
		pair, _ := sample.Retry(sample.DefaultAttempts,
			func() [2]int { return drawGCDPair(rng, opts.Max) },
			func(p [2]int) bool { return !seen.Seen(p) },
		)
		seen.Add(pair)
		out = append(out, newGCDProblem(pair[0], pair[1], ask))
	}

	return out
}

// drawGCDPair returns (g·m, g·n) with GCD exactly g.
func drawGCDPair(rng prng.Source, bound int) [2]int {
	g := sample.IntIn(rng, 2, min(maxTargetGCD, bound/3))
	limit := bound / g // ≥ 3 by the bound on g

	mn := sample.RetryOr(sample.MaxAttempts,
		func() [2]int { return [2]int{sample.IntIn(rng, 1, limit), sample.IntIn(rng, 1, limit)} },
		func(c [2]int) bool { return c[0] != c[1] && numtheory.GCD(c[0], c[1]) == 1 },
		func() [2]int {
			k := sample.IntIn(rng, 1, limit-1)
			return [2]int{k + 1, k}
		},
	)

	return [2]int{g * mn[0], g * mn[1]}
}

func newGCDProblem(a, b int, ask GCDAsk) GCDProblem {
	ladder, err := numtheory.Ladder(a, b)
	if err != nil {
		// unreachable: drawGCDPair only yields positive multiples of g ≥ 2
		panic(err)
	}
	return GCDProblem{
		A:      a,
		B:      b,
		Ask:    ask,
		GCD:    ladder.GCD(),
		LCM:    ladder.LCM(),
		Ladder: ladder,
	}
}
