// SPDX-License-Identifier: MIT
// Package: render
//
// markdown.go - Markdown layout shared by the md and html formats.

package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/nobu-k/100-math-sub004/worksheet"
)

// mdEscaper backslash-escapes characters Markdown would otherwise interpret.
var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

// Markdown writes sheet as a Markdown document.
func Markdown(w io.Writer, sheet worksheet.Sheet, answers bool) error {
	var buf bytes.Buffer
	writeMarkdown(&buf, sheet, answers)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeMarkdown(buf *bytes.Buffer, sheet worksheet.Sheet, answers bool) {
	fmt.Fprintf(buf, "# %s\n\n", mdEscaper.Replace(sheet.Title))
	fmt.Fprintf(buf, "Topic: %s, seed: `%s`\n\n", sheet.Topic, sheet.Seed)
	for i, p := range sheet.Problems {
		fmt.Fprintf(buf, "%d. %s\n", i+1, mdEscaper.Replace(p.Question()))
	}
	if !answers {
		return
	}

	buf.WriteString("\n## Answers\n\n")
	for i, p := range sheet.Problems {
		fmt.Fprintf(buf, "%d. %s\n", i+1, mdEscaper.Replace(p.Answer()))
	}
}
