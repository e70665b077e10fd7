// SPDX-License-Identifier: MIT
// Package: quality
//
// quality.go - moments, serial correlation and chi-square uniformity.

package quality

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nobu-k/100-math-sub004/prng"
)

// Defaults used by the command line.
const (
	DefaultDraws   = 100000
	DefaultBuckets = 20
	DefaultAlpha   = 0.001
	DefaultMaxCorr = 0.02

	minPerBucket = 5
)

// IdealStdDev is the standard deviation of U(0,1).
var IdealStdDev = 1 / math.Sqrt(12)

// Report summarizes one assessment.
type Report struct {
	Draws   int   `json:"draws"`
	Buckets int   `json:"buckets"`
	Counts  []int `json:"counts"`

	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`

	// Lag1 is the Pearson correlation of draw i with draw i+1.
	Lag1 float64 `json:"lag1"`

	ChiSquare float64 `json:"chi_square"`
	PValue    float64 `json:"p_value"`
}

// OK reports whether uniformity is not rejected at alpha and the serial
// correlation stays within ±maxCorr.
func (r Report) OK(alpha, maxCorr float64) bool {
	return r.PValue >= alpha && math.Abs(r.Lag1) <= maxCorr
}

// String formats the report for terminals.
func (r Report) String() string {
	return fmt.Sprintf(
		"draws=%d buckets=%d min=%.6f max=%.6f mean=%.6f stddev=%.6f (ideal %.6f) lag1=%+.6f chi2=%.3f p=%.4f",
		r.Draws, r.Buckets, r.Min, r.Max, r.Mean, r.StdDev, IdealStdDev, r.Lag1, r.ChiSquare, r.PValue,
	)
}

// Assess consumes draws values from src and measures them.
//
// Errors:
//   - ErrBuckets     if buckets < 2.
//   - ErrTooFewDraws if draws < 5·buckets.
//   - ErrOutOfRange  if any value falls outside [0,1).
//
// Complexity: O(draws) time and memory.
func Assess(src prng.Source, draws, buckets int) (Report, error) {
	if buckets < 2 {
		return Report{}, fmt.Errorf("Assess: buckets=%d: %w", buckets, ErrBuckets)
	}
	if draws < minPerBucket*buckets {
		return Report{}, fmt.Errorf("Assess: draws=%d for %d buckets: %w", draws, buckets, ErrTooFewDraws)
	}

	data := make([]float64, draws)
	counts := make([]int, buckets)
	for i := range data {
		v := src.Next()
		if v < 0 || v >= 1 || math.IsNaN(v) {
			return Report{}, fmt.Errorf("Assess: draw %d = %v: %w", i, v, ErrOutOfRange)
		}
		data[i] = v
		counts[int(v*float64(buckets))]++
	}

	r := Report{Draws: draws, Buckets: buckets, Counts: counts}
	var err error
	if r.Mean, err = stats.Mean(data); err != nil {
		return Report{}, fmt.Errorf("Assess: mean: %w", err)
	}
	if r.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Report{}, fmt.Errorf("Assess: stddev: %w", err)
	}
	if r.Min, err = stats.Min(data); err != nil {
		return Report{}, fmt.Errorf("Assess: min: %w", err)
	}
	if r.Max, err = stats.Max(data); err != nil {
		return Report{}, fmt.Errorf("Assess: max: %w", err)
	}
	if r.Lag1, err = stats.Correlation(data[:draws-1], data[1:]); err != nil {
		return Report{}, fmt.Errorf("Assess: correlation: %w", err)
	}

	r.ChiSquare = chiSquare(counts, draws)
	chi := distuv.ChiSquared{K: float64(buckets - 1)}
	r.PValue = chi.Survival(r.ChiSquare)

	return r, nil
}

// chiSquare is Σ (observed-expected)²/expected over equal-probability buckets.
func chiSquare(counts []int, draws int) float64 {
	expected := float64(draws) / float64(len(counts))
	sum := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		sum += d * d / expected
	}
	return sum
}
