// SPDX-License-Identifier: MIT
// Package: worksheet
//
// registry.go - string-keyed access to the typed topic generators.
//
// Design:
//   - One Topic per generator; the typed Generate<Topic> functions stay the
//     primary API, the registry only adapts Params to options.
//   - Registration is done once in Default(); duplicates are programmer
//     errors and panic. Lookups never panic.
//   - A built Registry is read-only and safe to share between goroutines.

package worksheet

import (
	"fmt"
	"sort"

	"github.com/nobu-k/100-math-sub004/seed"
)

// Topic describes one worksheet topic.
type Topic struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Modes        []string `json:"modes,omitempty"`
	DefaultCount int      `json:"default_count"`

	generate func(seed.Seed, Params) []Problem
}

// Generate builds the sheet for s and p.
func (t Topic) Generate(s seed.Seed, p Params) Sheet {
	return Sheet{
		Topic:    t.ID,
		Title:    t.Title,
		Seed:     s,
		Params:   p.Clone(),
		Problems: t.generate(s, p),
	}
}

// newTopic binds a typed generator to the Params surface.
func newTopic[O any, P Problem](id, title string, modes []string, defCount int,
	parse func(Params) O, gen func(seed.Seed, O) []P) Topic {
	return Topic{
		ID:           id,
		Title:        title,
		Modes:        modes,
		DefaultCount: defCount,
		generate: func(s seed.Seed, p Params) []Problem {
			return asProblems(gen(s, parse(p)))
		},
	}
}

// Registry maps topic ids to topics.
type Registry struct {
	topics map[string]Topic
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{topics: make(map[string]Topic)}
}

// Register adds t. It panics on an empty or duplicate id.
func (r *Registry) Register(t Topic) {
	if t.ID == "" || t.generate == nil {
		panic("worksheet: Register(incomplete topic)")
	}
	if _, dup := r.topics[t.ID]; dup {
		panic("worksheet: Register(duplicate topic " + t.ID + ")")
	}
	r.topics[t.ID] = t
}

// Lookup returns the topic with id.
func (r *Registry) Lookup(id string) (Topic, bool) {
	t, ok := r.topics[id]
	return t, ok
}

// Topics returns all topics sorted by id.
func (r *Registry) Topics() []Topic {
	out := make([]Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Generate looks up id and generates its sheet.
func (r *Registry) Generate(id string, s seed.Seed, p Params) (Sheet, error) {
	t, ok := r.Lookup(id)
	if !ok {
		return Sheet{}, fmt.Errorf("%w: %q", ErrUnknownTopic, id)
	}

	return t.Generate(s, p), nil
}

// Default returns a registry holding every built-in topic.
func Default() *Registry {
	r := NewRegistry()
	r.Register(newTopic(TopicDivision, "Division with remainders",
		[]string{string(DivisionExact), string(DivisionRemainder), ModeMixed},
		defaultDivisionCount, parseDivisionOptions, GenerateDivision))
	r.Register(newTopic(TopicBlank, "Fill in the blank",
		[]string{string(BlankAdd), string(BlankSub), ModeMixed},
		defaultBlankCount, parseBlankOptions, GenerateBlank))
	r.Register(newTopic(TopicGCDLCM, "GCD and LCM",
		[]string{string(AskGCD), string(AskLCM), ModeMixed},
		defaultGCDCount, parseGCDOptions, GenerateGCDLCM))
	r.Register(newTopic(TopicFactor, "Prime factorization",
		nil, defaultFactorCount, parseFactorOptions, GenerateFactor))
	r.Register(newTopic(TopicCompare, "Compare",
		[]string{string(CompareNumber), string(CompareExpr), ModeMixed},
		defaultCompareCount, parseCompareOptions, GenerateCompare))
	r.Register(newTopic(TopicCounting, "Counting",
		[]string{string(CountFactorial), string(CountPerm), string(CountComb), ModeMixed},
		defaultCountingCount, parseCountingOptions, GenerateCounting))
	r.Register(newTopic(TopicArea, "Area and perimeter",
		[]string{string(ShapeRect), string(ShapeSquare), string(ShapeTriangle), ModeMixed},
		defaultAreaCount, parseAreaOptions, GenerateArea))
	r.Register(newTopic(TopicFrequency, "Frequency tables",
		nil, defaultFrequencyCount, parseFrequencyOptions, GenerateFrequency))

	return r
}
