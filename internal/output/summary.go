package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/news-curator/internal/config"
	"github.com/jonathan/news-curator/internal/types"
)

// SummaryFilename is the machine-readable record of a run.
const SummaryFilename = "conversion-summary.json"

// SummaryParams carries everything BuildSummary aggregates. Processed counts
// records that reached scoring; excluded records count only as Skipped.
type SummaryParams struct {
	RunID        string
	SourceFile   string
	OutputDir    string
	Processed    int
	Skipped      int
	Selected     []types.ScoredArticle
	Filenames    []string
	Now          time.Time
	ConfigSource string
	Settings     config.AlgorithmSettings
}

// BuildSummary aggregates run statistics into a RunSummary. Pure aggregation:
// no scoring logic, no I/O. The date range is the min/max of selected dates,
// null when nothing was selected.
func BuildSummary(p SummaryParams) *types.RunSummary {
	summary := &types.RunSummary{
		RunID:                  p.RunID,
		SourceFile:             p.SourceFile,
		OutputDirectory:        p.OutputDir,
		TotalArticlesProcessed: p.Processed,
		TotalArticlesSelected:  len(p.Selected),
		SkippedRecords:         p.Skipped,
		FilesCreated:           p.Filenames,
		ExportDate:             p.Now.Format("2006-01-02 15:04:05"),
		ConfigSource:           p.ConfigSource,
		Settings: types.SettingsSnapshot{
			MaxArticles:      p.Settings.MaxArticles,
			RecencyMaxDays:   p.Settings.RecencyMaxDays,
			RecencyMaxPoints: p.Settings.RecencyMaxPoints,
		},
	}
	if summary.FilesCreated == nil {
		summary.FilesCreated = []string{}
	}

	if len(p.Selected) > 0 {
		earliest := p.Selected[0].DateKey()
		latest := earliest
		for i := range p.Selected[1:] {
			key := p.Selected[i+1].DateKey()
			if key < earliest {
				earliest = key
			}
			if key > latest {
				latest = key
			}
		}
		summary.DateRange = types.DateRange{Earliest: &earliest, Latest: &latest}
	}

	return summary
}

// WriteSummary writes the summary JSON into dir and returns the marshaled
// bytes so the caller can schema-validate them.
func WriteSummary(dir string, summary *types.RunSummary) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, &Error{Message: "failed to marshal run summary", Cause: err}
	}

	path := filepath.Join(dir, SummaryFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}

	return data, nil
}
