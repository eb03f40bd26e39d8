// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/trend-report/pkg/types"
)

// summarySheet is the name of the workbook's first sheet.
const summarySheet = "Summary"

// Column headers, in output order.
var (
	summaryColumns = []any{"Aliases", "Total Articles", "Regulatory Articles", "Expert Mentions", "Conferences"}
	detailColumns  = []any{"id", "title", "crawled", "url", "content", "type"}
)

// WriteWorkbook serializes the report to an xlsx file at path: the Summary
// sheet first, then one sheet per trend in report order, each with a header
// row (R3.1-R3.3). NewSheet returns the existing sheet when the name is
// already taken, so colliding trends overwrite rather than erroring (R3.4).
// Any error aborts the save; there is no partial-write recovery.
func WriteWorkbook(r types.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	// The workbook's default sheet becomes the summary.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}
	if err := f.SetSheetRow(summarySheet, "A1", &summaryColumns); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	for i, row := range r.Summary {
		cells := []any{row.Aliases, row.TotalArticles, row.Regulatory, row.ExpertMentions, row.Conferences}
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}

	for _, sheet := range r.Sheets {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", sheet.Name, err)
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &detailColumns); err != nil {
			return fmt.Errorf("writing header for %q: %w", sheet.Name, err)
		}
		for i, a := range sheet.Articles {
			cells := []any{a.ID, a.Title, a.Crawled, a.URL, a.Content, a.Type}
			if err := f.SetSheetRow(sheet.Name, fmt.Sprintf("A%d", i+2), &cells); err != nil {
				return fmt.Errorf("writing row %d of %q: %w", i+1, sheet.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
