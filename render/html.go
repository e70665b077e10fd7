package render

import (
	"bytes"
	"io"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/nobu-k/100-math-sub004/worksheet"
)

// HTML writes sheet as a complete, printable HTML page.
//
// The page is the Markdown layout passed through gomarkdown, so the two
// formats never drift apart.
func HTML(w io.Writer, sheet worksheet.Sheet, answers bool) error {
	var src bytes.Buffer
	writeMarkdown(&src, sheet, answers)

	// parsers carry state; one per document
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Title: sheet.Title,
		Flags: mdhtml.CommonFlags | mdhtml.CompletePage,
	})

	_, err := w.Write(markdown.ToHTML(src.Bytes(), p, r))
	return err
}
