// Package export dumps raw workbook rows as a JSON document, the simpler
// sibling of the full conversion pipeline.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/news-curator/internal/parsing"
	"github.com/jonathan/news-curator/internal/types"
)

// Record is one exported row. Fields that were absent in the workbook are
// null rather than empty strings, so consumers can tell missing from blank.
type Record struct {
	Date        *string `json:"Date"`
	Source      *string `json:"Source"`
	Title       *string `json:"Title"`
	Link        *string `json:"Link"`
	Description *string `json:"Description"`
}

// TableExport is the top-level JSON document produced by the export-json command.
type TableExport struct {
	SourceFile   string   `json:"source_file"`
	ExportDate   string   `json:"export_date"`
	TotalRecords int      `json:"total_records"`
	Data         []Record `json:"data"`
}

// Build converts raw records into an export document. Date values that parse
// are canonicalized to YYYY-MM-DD; unparsable ones are passed through as-is.
func Build(sourceFile string, records []types.RawRecord, now time.Time) *TableExport {
	data := make([]Record, 0, len(records))
	for _, raw := range records {
		date := raw.Date
		if t, err := parsing.ParseDate(raw.Date); err == nil {
			date = t.Format("2006-01-02")
		}
		data = append(data, Record{
			Date:        orNull(date),
			Source:      orNull(raw.Source),
			Title:       orNull(raw.Title),
			Link:        orNull(raw.Link),
			Description: orNull(raw.Description),
		})
	}

	return &TableExport{
		SourceFile:   sourceFile,
		ExportDate:   now.Format("2006-01-02 15:04:05"),
		TotalRecords: len(data),
		Data:         data,
	}
}

// Write marshals the export document with indentation and writes it to path.
func Write(path string, table *TableExport) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return nil
}

func orNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
