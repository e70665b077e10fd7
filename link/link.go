// Package link is the share-link codec: it turns (topic, seed, params) into a
// canonical query string and back.
//
// Encoding is canonical: topic first, then the hex seed, then the remaining
// parameters sorted by key, so equal sheets always share one link. Decoding
// is total. A missing or malformed seed is replaced by a fresh random seed
// and reported through the boolean, which lets a front end redirect to the
// canonical link instead of failing.
package link

import (
	"net/url"
	"strings"

	"github.com/nobu-k/100-math-sub004/seed"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

// Reserved query keys.
const (
	KeyTopic = "topic"
	KeySeed  = "seed"
)

// Link is a decoded share link.
type Link struct {
	Topic  string
	Seed   seed.Seed
	Params worksheet.Params
}

// Encode returns the canonical query string for topic, s and params.
// Empty values and reserved keys inside params are dropped.
func Encode(topic string, s seed.Seed, params worksheet.Params) string {
	var b strings.Builder
	b.WriteString(KeyTopic + "=" + url.QueryEscape(topic))
	b.WriteString("&" + KeySeed + "=" + seed.ToHex(s))

	rest := url.Values{}
	for k, v := range params {
		if k == KeyTopic || k == KeySeed || v == "" {
			continue
		}
		rest.Set(k, v)
	}
	if len(rest) > 0 {
		// url.Values.Encode sorts by key
		b.WriteString("&" + rest.Encode())
	}

	return b.String()
}

// Decode parses rawQuery (a leading '?' is allowed). The boolean is false
// when the seed was missing or malformed and a fresh one was substituted.
// Malformed query pairs are skipped; for repeated keys the first value wins.
func Decode(rawQuery string) (Link, bool) {
	// ParseQuery keeps every pair it could parse alongside the error
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))

	s, ok := seed.Resolve(values.Get(KeySeed))
	l := Link{
		Topic:  strings.TrimSpace(values.Get(KeyTopic)),
		Seed:   s,
		Params: worksheet.Params{},
	}
	for k, vs := range values {
		if k == KeyTopic || k == KeySeed || len(vs) == 0 || vs[0] == "" {
			continue
		}
		l.Params[k] = vs[0]
	}

	return l, ok
}

// String returns the canonical query string of l.
func (l Link) String() string {
	return Encode(l.Topic, l.Seed, l.Params)
}

// URL appends the canonical query to base.
func (l Link) URL(base string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + l.String()
}
