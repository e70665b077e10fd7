package render_test

import (
	"bytes"
	"testing"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobu-k/100-math-sub004/render"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

// query evaluates a JSONPath against a rendered document.
func query(t *testing.T, doc any, path string) []any {
	t.Helper()
	x, err := jp.ParseString(path)
	require.NoError(t, err, path)
	return x.Get(doc)
}

// TestJSONShapeForConsumers pins the paths external consumers rely on.
func TestJSONShapeForConsumers(t *testing.T) {
	t.Parallel()

	reg := worksheet.Default()
	for _, topic := range reg.Topics() {
		sheet := topic.Generate(0xc0ffee, nil)

		var buf bytes.Buffer
		require.NoError(t, render.JSON(&buf, sheet, true))
		doc, err := oj.ParseString(buf.String())
		require.NoError(t, err)

		assert.Equal(t, []any{topic.ID}, query(t, doc, "$.topic"))
		assert.Equal(t, []any{"c0ffee"}, query(t, doc, "$.seed"))
		assert.Len(t, query(t, doc, "$.problems[*].question"), topic.DefaultCount, topic.ID)
		assert.Len(t, query(t, doc, "$.problems[*].answer"), topic.DefaultCount, topic.ID)
		assert.Len(t, query(t, doc, "$.problems[*].data"), topic.DefaultCount, topic.ID)

		buf.Reset()
		require.NoError(t, render.JSON(&buf, sheet, false))
		hidden, err := oj.ParseString(buf.String())
		require.NoError(t, err)
		assert.Empty(t, query(t, hidden, "$.problems[*].answer"), topic.ID)
		assert.Empty(t, query(t, hidden, "$.problems[*].data"), topic.ID)
	}
}

func TestJSONDivisionData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, divisionSheet(t), true))
	doc, err := oj.ParseString(buf.String())
	require.NoError(t, err)

	assert.Equal(t, []any{int64(14), int64(22), int64(42), int64(63)}, query(t, doc, "$.problems[*].data.dividend"))
	assert.Equal(t, []any{"exact", "remainder", "remainder", "exact"}, query(t, doc, "$.problems[*].kind"))
}
