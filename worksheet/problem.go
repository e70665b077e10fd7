// SPDX-License-Identifier: MIT
// Package: worksheet
//
// problem.go - the record contract shared by all topics.

package worksheet

import (
	"errors"
	"fmt"

	"github.com/nobu-k/100-math-sub004/seed"
)

// Problem is the read-only view renderers need of any topic record.
type Problem interface {
	// Kind names the sub-pattern that produced the record ("remainder", "lcm", ...).
	Kind() string
	// Question is the printable prompt.
	Question() string
	// Answer is the printable answer-key entry.
	Answer() string
	// Check verifies the numeric relation the topic advertises.
	Check() error
}

// Sheet is one generated worksheet.
type Sheet struct {
	Topic    string    `json:"topic"`
	Title    string    `json:"title"`
	Seed     seed.Seed `json:"seed"`
	Params   Params    `json:"params,omitempty"`
	Problems []Problem `json:"problems"`
}

// Check runs Check on every problem and joins the failures.
func (s Sheet) Check() error {
	var errs []error
	for i, p := range s.Problems {
		if err := p.Check(); err != nil {
			errs = append(errs, fmt.Errorf("problem %d: %w", i+1, err))
		}
	}

	return errors.Join(errs...)
}

// checkf builds an ErrCheckFailed with context.
func checkf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrCheckFailed)
}

// asProblems widens a typed batch to the Problem interface.
func asProblems[P Problem](ps []P) []Problem {
	out := make([]Problem, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}
