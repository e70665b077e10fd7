// SPDX-License-Identifier: MIT
// Package: numtheory
//
// errors.go - sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Implementations attach method context with %w.
//   - Kernels never panic on bad input.

package numtheory

import "errors"

// ErrNonPositive indicates an argument that must be ≥1 (≥2 for Factorize) was not.
var ErrNonPositive = errors.New("numtheory: value must be positive")

// ErrOutOfRange indicates a counting argument outside [0, MaxCountN].
var ErrOutOfRange = errors.New("numtheory: argument out of range")
