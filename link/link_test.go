package link_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobu-k/100-math-sub004/link"
	"github.com/nobu-k/100-math-sub004/seed"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

func TestEncodeCanonical(t *testing.T) {
	t.Parallel()

	got := link.Encode("division", 42, worksheet.Params{
		"mode":  "remainder",
		"count": "12",
		"seed":  "ignored",
		"empty": "",
	})
	assert.Equal(t, "topic=division&seed=2a&count=12&mode=remainder", got)

	assert.Equal(t, "topic=factor&seed=0", link.Encode("factor", 0, nil))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []link.Link{
		{Topic: "division", Seed: 42, Params: worksheet.Params{"mode": "exact"}},
		{Topic: "blank", Seed: 0xffffffff, Params: worksheet.Params{"max": "100", "count": "30"}},
		{Topic: "frequency", Seed: 0, Params: worksheet.Params{}},
		{Topic: "compare", Seed: 7, Params: worksheet.Params{"note": "a&b=c d"}},
	}
	for _, want := range cases {
		got, ok := link.Decode(want.String())
		require.True(t, ok, want.String())
		assert.Equal(t, want, got)
		assert.Equal(t, want.String(), got.String())
	}
}

func TestDecodeFallsBack(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"topic=division",
		"topic=division&seed=",
		"topic=division&seed=xyz",
		"topic=division&seed=123456789",
		"?topic=division&seed=-1",
	} {
		l, ok := link.Decode(raw)
		assert.False(t, ok, raw)
		assert.Equal(t, "division", l.Topic, raw)
	}
}

func TestDecodeTolerant(t *testing.T) {
	t.Parallel()

	l, ok := link.Decode("?topic=area&seed=DEADBEEF&max=30&max=40&bad=%zz&mode=square")
	require.True(t, ok)
	assert.Equal(t, "area", l.Topic)
	assert.Equal(t, seed.Seed(0xdeadbeef), l.Seed)
	assert.Equal(t, "30", l.Params["max"])
	assert.Equal(t, "square", l.Params["mode"])
	assert.NotContains(t, l.Params, "bad")
}

func TestURL(t *testing.T) {
	t.Parallel()

	l := link.Link{Topic: "gcdlcm", Seed: 255}
	assert.Equal(t, "/sheets/gcdlcm?topic=gcdlcm&seed=ff", l.URL("/sheets/gcdlcm"))
	assert.Equal(t, "http://x/?v=1&topic=gcdlcm&seed=ff", l.URL("http://x/?v=1"))
}
