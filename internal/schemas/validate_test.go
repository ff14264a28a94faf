package schemas_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/news-curator/internal/config"
	"github.com/jonathan/news-curator/internal/output"
	"github.com/jonathan/news-curator/internal/schemas"
	"github.com/jonathan/news-curator/internal/types"
)

func TestValidateJSONString_SimpleSchema(t *testing.T) {
	schema := `{"type": "object", "properties": {"name": {"type": "string"}}, "required": ["name"]}`

	assert.NoError(t, schemas.ValidateJSONString(schema, `{"name": "ok"}`))

	err := schemas.ValidateJSONString(schema, `{}`)
	require.Error(t, err)
	var verr *schemas.ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Error(), "name")
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := schemas.ValidateJSONString(`{"type": 42}`, `{}`)

	require.Error(t, err)
	var lerr *schemas.SchemaLoadError
	assert.ErrorAs(t, err, &lerr)
}

func TestConfigSchema_AcceptsDefaultConfig(t *testing.T) {
	data, err := json.Marshal(config.Default())
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(schemas.ConfigSchema, string(data)))
}

func TestConfigSchema_RejectsPartialDocument(t *testing.T) {
	err := schemas.ValidateJSONString(schemas.ConfigSchema,
		`{"important_sources": ["Reuters"]}`)

	require.Error(t, err)
	var verr *schemas.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestConfigSchema_RejectsUnknownKeys(t *testing.T) {
	cfg := config.Default()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["surprise"] = true
	data, err = json.Marshal(doc)
	require.NoError(t, err)

	assert.Error(t, schemas.ValidateJSONString(schemas.ConfigSchema, string(data)))
}

func TestConfigSchema_RejectsZeroMaxArticles(t *testing.T) {
	cfg := config.Default()
	cfg.AlgorithmSettings.MaxArticles = 0
	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.Error(t, schemas.ValidateJSONString(schemas.ConfigSchema, string(data)))
}

func TestSummarySchema_AcceptsBuiltSummary(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	summary := output.BuildSummary(output.SummaryParams{
		RunID:      "run-1",
		SourceFile: "news_data.xlsx",
		OutputDir:  "news-articles",
		Processed:  2,
		Skipped:    0,
		Selected: []types.ScoredArticle{
			{Article: types.Article{Date: day}},
			{Article: types.Article{Date: day.AddDate(0, 0, -1)}},
		},
		Filenames:    []string{"2024-06-01-01.html", "2024-05-31-01.html"},
		Now:          day,
		ConfigSource: config.DefaultSource,
		Settings:     config.Default().AlgorithmSettings,
	})

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(schemas.SummarySchema, string(data)))
}

func TestSummarySchema_AcceptsEmptyRun(t *testing.T) {
	summary := output.BuildSummary(output.SummaryParams{
		RunID:        "run-2",
		SourceFile:   "news_data.xlsx",
		OutputDir:    "news-articles",
		Now:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ConfigSource: config.DefaultSource,
		Settings:     config.Default().AlgorithmSettings,
	})

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(schemas.SummarySchema, string(data)))
}

func TestSummarySchema_RejectsBadFilenamePattern(t *testing.T) {
	summary := output.BuildSummary(output.SummaryParams{
		RunID:        "run-3",
		SourceFile:   "news_data.xlsx",
		OutputDir:    "news-articles",
		Filenames:    []string{"not-a-dated-file.html"},
		Now:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ConfigSource: config.DefaultSource,
		Settings:     config.Default().AlgorithmSettings,
	})

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	assert.Error(t, schemas.ValidateJSONString(schemas.SummarySchema, string(data)))
}
