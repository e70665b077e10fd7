// Package render turns a worksheet.Sheet into printable or machine-readable
// documents.
//
// Every format is a Renderer with the same signature; the answers flag
// decides whether the answer key is included. Formats are looked up by name
// (ByName) so the command line and the preview server share one table:
//
//	md    Markdown with a numbered problem list and an "Answers" section
//	html  the Markdown rendered to a complete HTML page (gomarkdown)
//	json  problem records; answers and raw data are dropped when hidden
//	xlsx  an Excel workbook with "Problems" and "Answers" sheets (excelize)
//
// Renderers only read the sheet and never consume randomness, so a sheet
// renders identically in every format.
package render
