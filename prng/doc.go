// Package prng turns a 32-bit seed into a reproducible stream of values in
// [0,1).
//
// Goals:
//   - Determinism: same seed ⇒ identical stream on every platform and run.
//   - Encapsulation: one explicit instance per generation call; no globals,
//     no time-based sources hidden anywhere.
//   - Compatibility: Mulberry32 is bit-exact with the widely used JavaScript
//     mulberry32, so a worksheet shared by seed looks the same whichever
//     implementation renders it.
//
// Concurrency:
//   - A *Mulberry32 is NOT goroutine-safe. Construct one per call; never
//     share it across goroutines or across generator calls.
package prng
