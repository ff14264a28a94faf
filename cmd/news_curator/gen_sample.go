package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/news-curator/internal/ingestion"
)

var genSampleCmd = &cobra.Command{
	Use:   "gen-sample",
	Short: "Generate a sample source workbook",
	Long:  "Writes a five-row sample workbook for trying out the convert and export-json commands. With --with-source-link the Source and Link columns are included; otherwise the minimal Date/Title/Description variant is written.",
	RunE:  runGenSample,
}

var (
	genSampleOut            string
	genSampleWithSourceLink bool
)

func init() {
	genSampleCmd.Flags().StringVarP(&genSampleOut, "out", "o", "", "Path for the sample workbook (default: sample_data.xlsx)")
	genSampleCmd.Flags().BoolVar(&genSampleWithSourceLink, "with-source-link", false, "Include the Source and Link columns")

	rootCmd.AddCommand(genSampleCmd)
}

func runGenSample(_ *cobra.Command, _ []string) error {
	outPath := genSampleOut
	if outPath == "" {
		outPath = "sample_data.xlsx"
		if genSampleWithSourceLink {
			outPath = "sample_data_with_source_link.xlsx"
		}
	}

	if err := ingestion.WriteSampleWorkbook(outPath, genSampleWithSourceLink); err != nil {
		return fmt.Errorf("failed to generate sample workbook: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Sample workbook created: %s\n", outPath)
	return nil
}
