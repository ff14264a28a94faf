package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_DateKey(t *testing.T) {
	article := Article{Date: time.Date(2024, 3, 5, 17, 30, 0, 0, time.UTC)}

	assert.Equal(t, "2024-03-05", article.DateKey())
}

func TestScoredArticle_PromotesArticleFields(t *testing.T) {
	scored := ScoredArticle{
		Article: Article{Title: "headline", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		Score:   7,
	}

	assert.Equal(t, "headline", scored.Title)
	assert.Equal(t, "2024-06-01", scored.DateKey())
}

func TestRunSummary_JSONFieldNames(t *testing.T) {
	earliest, latest := "2024-05-30", "2024-06-01"
	summary := RunSummary{
		RunID:        "run-1",
		DateRange:    DateRange{Earliest: &earliest, Latest: &latest},
		FilesCreated: []string{},
	}

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{
		"run_id", "source_file", "output_directory", "total_articles_processed",
		"total_articles_selected", "skipped_records", "date_range",
		"files_created", "export_date", "config_source", "algorithm_settings",
	} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, []any{}, doc["files_created"], "empty list must marshal as [] not null")
}

func TestDateRange_NullFields(t *testing.T) {
	data, err := json.Marshal(DateRange{})
	require.NoError(t, err)

	assert.JSONEq(t, `{"earliest": null, "latest": null}`, string(data))
}
