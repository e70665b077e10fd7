// Package sample provides the constraint-satisfying sampling patterns every
// worksheet generator is built from. All primitives draw from an explicit
// prng.Source passed by the caller; none keeps state between calls.
//
// Primitives:
//
//	IntIn           bounded integer draw, min + floor(next*(max-min+1))
//	Pick / Chance   uniform element pick, Bernoulli trial
//	Shuffle / Perm  seeded Fisher–Yates, permutation of 0..n-1
//	ChooseIndices   which k of n slots (e.g. blanks), ascending
//	Balanced        round-robin category list, shuffled
//	Weighted        cumulative-weight index pick
//	WithEdgeCases   first k items from an edge-case builder, rest generic
//	Retry           bounded rejection sampling, soft policy (accept last)
//	RetryOr         bounded rejection sampling, hard policy (constructive fallback)
//	Unique          per-batch seen-set for duplicate avoidance
//
// Determinism: every primitive consumes the source in a fixed order, so the
// same trajectory in yields the same result out. The number of draws a
// primitive consumes is part of its contract; changing it reshuffles every
// worksheet built on top.
package sample
