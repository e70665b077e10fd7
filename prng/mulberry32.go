// SPDX-License-Identifier: MIT
// Package: prng
//
// mulberry32.go - 32-bit accumulator PRNG with xorshift-multiply output mix.
//
// Algorithm (per draw):
//   - state += 0x6D2B79F5                  (Weyl increment, odd ⇒ full period 2^32)
//   - t = (state ^ state>>15) * (state | 1)
//   - t ^= t + (t ^ t>>7) * (t | 61)
//   - out = t ^ t>>14
//
// All arithmetic is modulo 2^32, which Go's uint32 gives us for free.
// The constants are a fixed wire-format detail: changing them changes every
// shared worksheet.

package prng

// mulberryIncrement is the Weyl-sequence step added to the state per draw.
const mulberryIncrement uint32 = 0x6D2B79F5

// twoPow32 normalizes a uint32 into [0,1).
const twoPow32 = 4294967296.0

// Mulberry32 is a small, fast PRNG with a single 32-bit accumulator.
// The zero value is a valid generator seeded with 0.
type Mulberry32 struct {
	state uint32
}

// New returns a generator positioned at the start of seed's trajectory.
// The seed is copied; nothing the generator does is visible to the caller.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the state and returns the next mixed 32-bit output.
//
// Complexity: O(1).
func (m *Mulberry32) Uint32() uint32 {
	m.state += mulberryIncrement
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)

	return t ^ (t >> 14)
}

// Next returns the next value in [0,1). The result is always strictly
// below 1 because the numerator is at most 2^32-1.
func (m *Mulberry32) Next() float64 {
	return float64(m.Uint32()) / twoPow32
}

var _ Source = (*Mulberry32)(nil)
