package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/news-curator/internal/logger"
	"github.com/jonathan/news-curator/internal/observability"
	"github.com/jonathan/news-curator/internal/pipeline"
	"github.com/jonathan/news-curator/internal/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a workbook into a ranked news article directory",
	Long: `Runs the full conversion pipeline: ingestion -> normalization -> scoring -> selection -> rendering -> output.

Articles are scored by recency, source credibility, keyword presence, and content length per the scoring configuration, and the top-ranked articles are written as HTML files alongside a JS manifest and a JSON run summary.`,
	RunE: runConvert,
}

var (
	convertSource      string
	convertOut         string
	convertConfig      string
	convertMaxArticles int
	convertVerbose     bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertSource, "source", "s", "", "Path to the source .xlsx workbook (required)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output directory (default: configured output directory)")
	convertCmd.Flags().StringVar(&convertConfig, "config", "", "Path to scoring config JSON (missing or invalid config falls back to built-in defaults)")
	convertCmd.Flags().IntVar(&convertMaxArticles, "max-articles", 0, "Override the configured maximum number of selected articles")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := convertCmd.MarkFlagRequired("source"); err != nil {
		panic(fmt.Sprintf("failed to mark source flag as required: %v", err))
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, _ []string) error {
	log, err := logger.New(convertVerbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	printer := observability.NewPrinter(os.Stdout)

	summary, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		SourcePath:  convertSource,
		OutputDir:   convertOut,
		MaxArticles: convertMaxArticles,
		ConfigPath:  convertConfig,
		Log:         log,
		OnProgress: func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "%s\n", event.Message)
			if convertVerbose && event.Step == "select" {
				if selected, ok := event.Content.([]types.ScoredArticle); ok {
					printer.PrintSelection(selected)
				}
			}
		},
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	printer.PrintRunSummary(summary)
	return nil
}
