// SPDX-License-Identifier: MIT
// Package: render
//
// xlsx.go - Excel workbook export.
//
// Layout:
//   - "Problems": header row (No., Question) then one row per problem.
//   - "Answers":  header row (No., Answer), only when answers are shown.
//   - Document properties carry the title and the seed so a printed copy can
//     be regenerated.

package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/nobu-k/100-math-sub004/worksheet"
)

// Sheet names inside the workbook.
const (
	SheetProblems = "Problems"
	SheetAnswers  = "Answers"
)

// XLSX writes sheet as an Excel workbook.
func XLSX(w io.Writer, sheet worksheet.Sheet, answers bool) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       sheet.Title,
		Subject:     sheet.Topic,
		Description: "seed " + sheet.Seed.String(),
	}); err != nil {
		return fmt.Errorf("XLSX: doc props: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("XLSX: style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetProblems); err != nil {
		return fmt.Errorf("XLSX: %w", err)
	}
	if err := writeColumn(f, SheetProblems, "Question", bold, sheet.Problems, worksheet.Problem.Question); err != nil {
		return err
	}

	if answers {
		if _, err := f.NewSheet(SheetAnswers); err != nil {
			return fmt.Errorf("XLSX: %w", err)
		}
		if err := writeColumn(f, SheetAnswers, "Answer", bold, sheet.Problems, worksheet.Problem.Answer); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("XLSX: write: %w", err)
	}
	return nil
}

// writeColumn fills a numbered two-column table on name.
func writeColumn(f *excelize.File, name, header string, style int,
	problems []worksheet.Problem, text func(worksheet.Problem) string) error {
	if err := f.SetSheetRow(name, "A1", &[]any{"No.", header}); err != nil {
		return fmt.Errorf("XLSX: %s header: %w", name, err)
	}
	if err := f.SetCellStyle(name, "A1", "B1", style); err != nil {
		return fmt.Errorf("XLSX: %s header style: %w", name, err)
	}
	for i, p := range problems {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("XLSX: %s row %d: %w", name, i+1, err)
		}
		if err := f.SetSheetRow(name, cell, &[]any{i + 1, text(p)}); err != nil {
			return fmt.Errorf("XLSX: %s row %d: %w", name, i+1, err)
		}
	}
	if err := f.SetColWidth(name, "B", "B", 60); err != nil {
		return fmt.Errorf("XLSX: %s width: %w", name, err)
	}
	return nil
}
