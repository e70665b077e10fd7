// SPDX-License-Identifier: MIT
// Package: seed
//
// seed.go - seed value, fresh-seed source and hex token codec.

package seed

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"
)

// maxTokenLen is the number of hex digits needed for a full 32-bit value.
const maxTokenLen = 8

// Seed is the 32-bit value that fully determines a generator's output.
type Seed uint32

// Random returns a non-reproducible seed for starting a new worksheet.
// It must never be called from inside deterministic generation.
func Random() Seed {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return Seed(mix32(uint64(time.Now().UnixNano())))
	}

	return Seed(binary.LittleEndian.Uint32(b[:]))
}

// ToHex encodes s as lowercase hex without prefix or padding.
func ToHex(s Seed) string {
	return strconv.FormatUint(uint64(s), 16)
}

// FromHex decodes a token produced by ToHex. Upper-case digits and leading
// zeros are accepted; signs, prefixes, whitespace and anything longer than
// eight digits are not.
func FromHex(tok string) (Seed, error) {
	if len(tok) == 0 || len(tok) > maxTokenLen {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, tok)
	}
	for i := 0; i < len(tok); i++ {
		if !isHexDigit(tok[i]) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidToken, tok)
		}
	}
	v, err := strconv.ParseUint(tok, 16, 32)
	if err != nil {
		// unreachable after the digit scan
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, tok)
	}

	return Seed(v), nil
}

// Resolve decodes tok, or falls back to a fresh Random seed when tok is
// malformed. The boolean reports whether tok was used.
func Resolve(tok string) (Seed, bool) {
	s, err := FromHex(tok)
	if err != nil {
		return Random(), false
	}

	return s, true
}

// String returns the hex token.
func (s Seed) String() string { return ToHex(s) }

// Uint32 returns the raw value handed to the PRNG.
func (s Seed) Uint32() uint32 { return uint32(s) }

// MarshalText implements encoding.TextMarshaler using the hex token.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(ToHex(s)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the hex token.
func (s *Seed) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}

	return false
}

// mix32 folds a 64-bit value into 32 well-spread bits (murmur3 finalizer).
func mix32(x uint64) uint32 {
	h := uint32(x) ^ uint32(x>>32)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16

	return h
}
