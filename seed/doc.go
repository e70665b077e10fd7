// Package seed defines the 32-bit seed space that fully determines a
// worksheet, and the compact hexadecimal token used to share it in a link.
//
// A Seed is created either fresh (Random) when a new worksheet is requested,
// or decoded from a shared token (FromHex). Decoding never panics and never
// returns a silently wrong number: malformed tokens yield ErrInvalidToken,
// and Resolve turns that failure into a fresh seed so callers always end up
// with something to generate from.
//
// Token format:
//
//	lowercase hexadecimal, no prefix, no padding
//	0          -> "0"
//	3735928559 -> "deadbeef"
//
// FromHex accepts 1..8 hex digits in either case, so FromHex(ToHex(s)) == s
// for every s in [0, 2^32).
package seed
