// Package main implements the news_curator CLI tool for converting tabular
// news records into ranked HTML article directories.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "news_curator",
	Short: "News article curation and conversion tool",
	Long:  "news_curator converts tabular news records (Date, Source, Title, Link, Description) into per-article HTML files plus a ranked selection, driven by a configurable importance-scoring heuristic.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
