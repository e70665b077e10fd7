package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/nobu-k/100-math-sub004/worksheet"
)

// Renderer writes sheet to w, with the answer key when answers is set.
type Renderer func(w io.Writer, sheet worksheet.Sheet, answers bool) error

// Format is a named Renderer with its HTTP and file metadata.
type Format struct {
	Name        string
	Ext         string
	ContentType string
	Render      Renderer
}

// Format names.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatXLSX     = "xlsx"
)

var formats = []Format{
	{FormatMarkdown, ".md", "text/markdown; charset=utf-8", Markdown},
	{FormatHTML, ".html", "text/html; charset=utf-8", HTML},
	{FormatJSON, ".json", "application/json", JSON},
	{FormatXLSX, ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", XLSX},
}

// Formats returns every supported format in a stable order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ByName returns the format called name (case-insensitive; "markdown" is
// accepted for "md").
func ByName(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "markdown" {
		n = FormatMarkdown
	}
	for _, f := range formats {
		if f.Name == n {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
