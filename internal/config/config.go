// Package config provides configuration loading and validation for the news-curator pipeline.
package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/news-curator/internal/logger"
	"github.com/jonathan/news-curator/internal/schemas"
)

// DefaultSource is the provenance value recorded when the built-in default
// configuration was used instead of a config file.
const DefaultSource = "defaults"

// AlgorithmSettings controls selection size and the recency component of scoring.
type AlgorithmSettings struct {
	MaxArticles      int `json:"max_articles" validate:"gt=0"`
	RecencyMaxDays   int `json:"recency_max_days" validate:"gte=0"`
	RecencyMaxPoints int `json:"recency_max_points" validate:"gte=0"`
}

// ContentQualityWeights defines the length-based scoring tiers. Thresholds
// are exclusive: a description must be strictly longer to earn the bonus.
type ContentQualityWeights struct {
	LongDescription   int `json:"long_description" validate:"gte=0"`
	MediumDescription int `json:"medium_description" validate:"gte=0"`
	LongThreshold     int `json:"long_threshold" validate:"gte=0"`
	MediumThreshold   int `json:"medium_threshold" validate:"gte=0"`
}

// ScoringWeights holds the point values for the non-recency score components.
type ScoringWeights struct {
	SourceCredibility int                   `json:"source_credibility" validate:"gte=0"`
	KeywordImportance int                   `json:"keyword_importance" validate:"gte=0"`
	ContentQuality    ContentQualityWeights `json:"content_quality"`
}

// OutputSettings controls which artifacts a run writes and where.
type OutputSettings struct {
	DefaultOutputDirectory string `json:"default_output_directory" validate:"required"`
	CreateSummary          bool   `json:"create_summary"`
	CreateConfigFile       bool   `json:"create_config_file"`
}

// Config is the full scoring and output configuration for one run.
// It is loaded once and read-only afterward.
type Config struct {
	AlgorithmSettings  AlgorithmSettings `json:"algorithm_settings"`
	ImportantSources   []string          `json:"important_sources"`
	ImportanceKeywords []string          `json:"importance_keywords"`
	ScoringWeights     ScoringWeights    `json:"scoring_weights"`
	OutputSettings     OutputSettings    `json:"output_settings"`
}

// Default returns the built-in configuration. Callers receive a fresh value
// each time; there is no ambient global to mutate.
func Default() Config {
	return Config{
		AlgorithmSettings: AlgorithmSettings{
			MaxArticles:      20,
			RecencyMaxDays:   30,
			RecencyMaxPoints: 10,
		},
		ImportantSources: []string{
			"Reuters",
			"Bloomberg",
			"Benzinga",
			"Yahoo Finance",
			"CNBC",
		},
		ImportanceKeywords: []string{
			"breaking",
			"exclusive",
			"earnings",
			"announce",
			"update",
		},
		ScoringWeights: ScoringWeights{
			SourceCredibility: 5,
			KeywordImportance: 3,
			ContentQuality: ContentQualityWeights{
				LongDescription:   2,
				MediumDescription: 1,
				LongThreshold:     200,
				MediumThreshold:   100,
			},
		},
		OutputSettings: OutputSettings{
			DefaultOutputDirectory: "news-articles",
			CreateSummary:          true,
			CreateConfigFile:       true,
		},
	}
}

// Load reads the configuration from a JSON file. Any problem (empty path,
// missing file, malformed JSON, incomplete document, or invalid values)
// substitutes the complete built-in default configuration and lets the run
// proceed. The fallback is never a partial merge: either the file supplies
// the entire configuration or defaults are used wholesale.
//
// The second return value records provenance: the config path on success,
// DefaultSource otherwise.
func Load(path string, log logger.Logger) (Config, string) {
	if path == "" {
		return Default(), DefaultSource
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("config file unreadable, using built-in defaults",
			logger.String("path", path), logger.Error(err))
		return Default(), DefaultSource
	}

	if err := schemas.ValidateJSONString(schemas.ConfigSchema, string(data)); err != nil {
		log.Warn("config file does not match schema, using built-in defaults",
			logger.String("path", path), logger.Error(err))
		return Default(), DefaultSource
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Warn("config file is not valid JSON, using built-in defaults",
			logger.String("path", path), logger.Error(err))
		return Default(), DefaultSource
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Warn("config values out of range, using built-in defaults",
			logger.String("path", path), logger.Error(err))
		return Default(), DefaultSource
	}

	return cfg, path
}

// IsImportantSource reports whether source case-insensitively contains any
// of the configured important-source substrings.
func (c *Config) IsImportantSource(source string) bool {
	if source == "" {
		return false
	}
	lower := strings.ToLower(source)
	for _, s := range c.ImportantSources {
		s = strings.TrimSpace(strings.ToLower(s))
		if s != "" && strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// Snapshot returns the algorithm settings actually used by a run, with an
// optional max-articles override applied (override wins when positive).
func (c *Config) Snapshot(maxArticlesOverride int) AlgorithmSettings {
	s := c.AlgorithmSettings
	if maxArticlesOverride > 0 {
		s.MaxArticles = maxArticlesOverride
	}
	return s
}
