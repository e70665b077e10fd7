// SPDX-License-Identifier: MIT
// Package: worksheet
//
// impl_frequency.go - read a frequency table: total and most frequent entry.
//
// Construction keeps both answers exact and unambiguous:
//   - non-winning counts ∈ [1, MaxFrequency-1];
//   - the winner, chosen by index, gets max(others)+1, so the mode is unique;
//   - Total is the sum of Counts.

package worksheet

import (
	"fmt"
	"strings"

	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/sample"
	"github.com/nobu-k/100-math-sub004/seed"
)

const (
	defaultFrequencyCount = 4
	defaultCategories     = 4
	minCategories         = 3
	maxCategories         = 6
	defaultMaxFrequency   = 9
	minMaxFrequency       = 3
	maxMaxFrequency       = 30
	paramCategories       = "categories"
	paramMaxFrequency     = "max"
	kindFrequency         = "frequency"
)

// surveyTopic is a label pool for one table.
type surveyTopic struct {
	title  string
	labels []string
}

var surveyTopics = []surveyTopic{
	{"Favourite fruit", []string{"apple", "banana", "cherry", "grape", "melon", "orange", "peach"}},
	{"Pets at home", []string{"cat", "dog", "fish", "hamster", "rabbit", "bird", "turtle"}},
	{"Favourite colour", []string{"red", "blue", "green", "yellow", "purple", "white", "black"}},
	{"Way to school", []string{"walk", "bus", "bike", "car", "train", "scooter"}},
	{"Favourite sport", []string{"football", "tennis", "swimming", "running", "basketball", "baseball"}},
}

// FrequencyOptions configures GenerateFrequency.
type FrequencyOptions struct {
	Count int
	// Categories is the number of rows per table.
	Categories int
	// MaxFrequency bounds every count.
	MaxFrequency int
}

func (o FrequencyOptions) normalize() FrequencyOptions {
	o.Count = normalizeCount(o.Count, defaultFrequencyCount)
	if o.Categories == 0 {
		o.Categories = defaultCategories
	}
	o.Categories = clamp(o.Categories, minCategories, maxCategories)
	if o.MaxFrequency == 0 {
		o.MaxFrequency = defaultMaxFrequency
	}
	o.MaxFrequency = clamp(o.MaxFrequency, minMaxFrequency, maxMaxFrequency)
	return o
}

func parseFrequencyOptions(p Params) FrequencyOptions {
	return FrequencyOptions{
		Count:        p.Int(ParamCount, 0),
		Categories:   p.Int(paramCategories, 0),
		MaxFrequency: p.Int(paramMaxFrequency, 0),
	}
}

// FrequencyProblem is a survey table.
type FrequencyProblem struct {
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
	Total  int      `json:"total"`
	Mode   string   `json:"mode"`
}

// Kind implements Problem.
func (p FrequencyProblem) Kind() string { return kindFrequency }

// Question implements Problem.
func (p FrequencyProblem) Question() string {
	rows := make([]string, len(p.Labels))
	for i, l := range p.Labels {
		rows[i] = fmt.Sprintf("%s %d", l, p.Counts[i])
	}
	return fmt.Sprintf("%s: %s. How many answers in total? Which is the most frequent?", p.Title, strings.Join(rows, ", "))
}

// Answer implements Problem.
func (p FrequencyProblem) Answer() string {
	return fmt.Sprintf("%d; %s", p.Total, p.Mode)
}

// Check implements Problem.
func (p FrequencyProblem) Check() error {
	if len(p.Labels) != len(p.Counts) || len(p.Labels) == 0 {
		return checkf("frequency: %d labels, %d counts", len(p.Labels), len(p.Counts))
	}
	sum, best, bestAt, ties := 0, -1, -1, 0
	for i, c := range p.Counts {
		if c < 1 {
			return checkf("frequency: count %d < 1", c)
		}
		sum += c
		switch {
		case c > best:
			best, bestAt, ties = c, i, 1
		case c == best:
			ties++
		}
	}
	if sum != p.Total {
		return checkf("frequency: counts sum to %d, total says %d", sum, p.Total)
	}
	if ties != 1 || p.Labels[bestAt] != p.Mode {
		return checkf("frequency: mode %q is not the unique maximum", p.Mode)
	}
	return nil
}

// GenerateFrequency returns opts.Count frequency tables for s.
func GenerateFrequency(s seed.Seed, opts FrequencyOptions) []FrequencyProblem {
	opts = opts.normalize()
	rng := prng.New(s.Uint32())

	topics := sample.Perm(rng, len(surveyTopics))
	out := make([]FrequencyProblem, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		out = append(out, drawFrequency(rng, surveyTopics[topics[i%len(topics)]], opts))
	}

	return out
}

func drawFrequency(rng prng.Source, topic surveyTopic, opts FrequencyOptions) FrequencyProblem {
	k := min(opts.Categories, len(topic.labels))
	picked := sample.Perm(rng, len(topic.labels))[:k]

	p := FrequencyProblem{Title: topic.title, Labels: make([]string, k), Counts: make([]int, k)}
	top := 0
	for i, idx := range picked {
		p.Labels[i] = topic.labels[idx]
		p.Counts[i] = sample.IntIn(rng, 1, opts.MaxFrequency-1)
	}
	winner := sample.IntIn(rng, 0, k-1)
	for i, c := range p.Counts {
		if i != winner && c > top {
			top = c
		}
	}
	p.Counts[winner] = top + 1
	p.Mode = p.Labels[winner]
	for _, c := range p.Counts {
		p.Total += c
	}

	return p
}
