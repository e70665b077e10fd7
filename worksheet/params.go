package worksheet

import (
	"strconv"
	"strings"
)

// Params is the string-keyed option bag decoded from a link or flags.
type Params map[string]string

// Int returns the integer under key, or def when absent or malformed.
func (p Params) Int(key string, def int) int {
	raw, ok := p[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}

// String returns the trimmed, lower-cased value under key, or def.
func (p Params) String(key, def string) string {
	raw, ok := p[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// Clone returns an independent copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// clamp limits v to [lo,hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeCount maps 0 (unset) to def and clamps to [1, MaxCount].
func normalizeCount(n, def int) int {
	if n == 0 {
		return def
	}
	return clamp(n, 1, MaxCount)
}
