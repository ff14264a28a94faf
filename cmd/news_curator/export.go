package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/news-curator/internal/export"
	"github.com/jonathan/news-curator/internal/ingestion"
)

var exportCmd = &cobra.Command{
	Use:   "export-json",
	Short: "Export workbook rows as a JSON document",
	Long:  "Reads the source workbook and dumps its rows, unscored and unranked, as a single JSON document with export metadata.",
	RunE:  runExportJSON,
}

var (
	exportSource string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportSource, "source", "s", "", "Path to the source .xlsx workbook (required)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Path to the output JSON file (default: source name with .json extension)")

	if err := exportCmd.MarkFlagRequired("source"); err != nil {
		panic(fmt.Sprintf("failed to mark source flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExportJSON(_ *cobra.Command, _ []string) error {
	records, warnings, err := ingestion.ReadWorkbook(exportSource)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}
	for _, w := range warnings {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	outPath := exportOut
	if outPath == "" {
		outPath = strings.TrimSuffix(exportSource, filepath.Ext(exportSource)) + ".json"
	}

	table := export.Build(exportSource, records, time.Now())
	if err := export.Write(outPath, table); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully exported %d records to %s\n", table.TotalRecords, outPath)
	return nil
}
