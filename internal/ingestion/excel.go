// Package ingestion reads tabular news records from Excel workbooks.
package ingestion

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/news-curator/internal/types"
)

// Expected column headers, matched case-insensitively against row 1.
// Source and Link are optional for the minimal sheet variant.
var expectedColumns = []string{"Date", "Source", "Title", "Link", "Description"}

// Error represents a failure reading the source workbook. Input errors are
// fatal for the run: the pipeline produces no partial output.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ReadWorkbook reads all data rows from the first sheet of the workbook at
// path. The first row is treated as the header and mapped to the expected
// columns case-insensitively. Missing columns are tolerated and reported as
// warnings; an unreadable file or an empty sheet is an error.
func ReadWorkbook(path string) ([]types.RawRecord, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, &Error{Message: fmt.Sprintf("failed to open workbook %s", path), Cause: err}
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, &Error{Message: fmt.Sprintf("workbook %s has no sheets", path)}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, &Error{Message: fmt.Sprintf("failed to read sheet %q", sheet), Cause: err}
	}
	if len(rows) == 0 {
		return nil, nil, &Error{Message: fmt.Sprintf("sheet %q is empty", sheet)}
	}

	// Map header cells to column indices.
	colIndex := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(h))
		if name != "" {
			colIndex[name] = i
		}
	}

	var warnings []string
	for _, col := range expectedColumns {
		if _, ok := colIndex[strings.ToLower(col)]; !ok {
			warnings = append(warnings, fmt.Sprintf("missing column: %s", col))
		}
	}

	cell := func(row []string, column string) string {
		i, ok := colIndex[strings.ToLower(column)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]types.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := types.RawRecord{
			Date:        cell(row, "Date"),
			Source:      cell(row, "Source"),
			Title:       cell(row, "Title"),
			Link:        cell(row, "Link"),
			Description: cell(row, "Description"),
		}
		// excelize returns trailing empty rows for styled-but-blank cells.
		if record.Date == "" && record.Source == "" && record.Title == "" &&
			record.Link == "" && record.Description == "" {
			continue
		}
		record.Row = len(records) + 1
		records = append(records, record)
	}

	return records, warnings, nil
}
