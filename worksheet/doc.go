// Package worksheet implements the generator contract and the topic
// generators built on it.
//
// Contract (every Generate<Topic> function):
//   - Pure: func(seed.Seed, <Topic>Options) []<Topic>Problem.
//   - Exactly one prng.Mulberry32 per call, created first and drawn from
//     monotonically; never re-seeded mid-call.
//   - Fixed count: Options.Count (clamped to [1, MaxCount], default per topic).
//   - Exact answers: every record's Check() returns nil.
//   - Mixed modes cover every constituent kind (round-robin balancing).
//   - Same (seed, options) ⇒ deep-equal output.
//
// Options are normalized, never rejected: out-of-range values are clamped and
// unknown modes fall back to the topic default, so a garbled shared link still
// yields a valid worksheet.
//
// Topics:
//
//	division   division with and without remainder
//	blank      addition/subtraction with one blank slot
//	gcdlcm     GCD/LCM with the common-factor ladder
//	factor     prime factorization
//	compare    compare numbers and expressions (<, =, >)
//	counting   factorials, arrangements, selections
//	area       rectangle/square/triangle area and perimeter
//	frequency  frequency tables: total and most frequent
//
// The Registry exposes the same generators behind a string-keyed Params map,
// which is what the CLI, the preview server and share links speak.
package worksheet
