// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/news-curator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSelection outputs the top selected articles with scores and dates.
func (p *Printer) PrintSelection(selected []types.ScoredArticle) {
	if len(selected) == 0 {
		p.printBox("SELECTED ARTICLES", "No articles selected.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total articles selected: %d\n\n", len(selected)))

	count := min(len(selected), maxItemsToShow)
	for i := 0; i < count; i++ {
		article := selected[i]
		title := article.Title
		if len(title) > 44 {
			title = title[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d  Date: %s", article.Score, article.DateKey()))
		if article.Source != "" {
			source := article.Source
			if len(source) > 20 {
				source = source[:17] + "..."
			}
			sb.WriteString(fmt.Sprintf("  (%s)", source))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(selected) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more articles", len(selected)-maxItemsToShow))
	}

	p.printBox("SELECTED ARTICLES", sb.String())
}

// PrintRunSummary outputs the final conversion report.
func (p *Printer) PrintRunSummary(summary *types.RunSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:    %s\n", summary.SourceFile))
	sb.WriteString(fmt.Sprintf("Output:    %s\n", summary.OutputDirectory))
	sb.WriteString(fmt.Sprintf("Config:    %s\n", summary.ConfigSource))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Processed: %d\n", summary.TotalArticlesProcessed))
	sb.WriteString(fmt.Sprintf("Selected:  %d\n", summary.TotalArticlesSelected))
	sb.WriteString(fmt.Sprintf("Skipped:   %d\n", summary.SkippedRecords))

	if summary.DateRange.Earliest != nil && summary.DateRange.Latest != nil {
		sb.WriteString(fmt.Sprintf("Range:     %s to %s\n", *summary.DateRange.Earliest, *summary.DateRange.Latest))
	}

	if len(summary.FilesCreated) > 0 {
		sb.WriteString("\nFiles:\n")
		count := min(len(summary.FilesCreated), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.FilesCreated[i]))
		}
		if len(summary.FilesCreated) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.FilesCreated)-maxItemsToShow))
		}
	}

	p.printBox("CONVERSION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
