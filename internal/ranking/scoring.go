// Package ranking computes importance scores for normalized articles.
package ranking

import (
	"strings"
	"time"

	"github.com/jonathan/news-curator/internal/config"
	"github.com/jonathan/news-curator/internal/types"
)

// Score computes the importance score of an article as the sum of four
// independent contributions: recency, source credibility, keyword presence,
// and content length. It is deterministic and side-effect-free; every point
// value and threshold comes from the configuration. The result is never
// negative.
func Score(article *types.Article, cfg *config.Config, now time.Time) int {
	score := recencyScore(article.Date, cfg.AlgorithmSettings, now)
	score += sourceCredibilityScore(article.Source, cfg)
	score += keywordScore(article, cfg)
	score += contentQualityScore(article.Description, cfg.ScoringWeights.ContentQuality)
	return score
}

// recencyScore awards max(0, recency_max_points - daysOld). Articles dated
// beyond recency_max_days contribute nothing, and the contribution never
// goes negative. Future-dated articles count as zero days old.
func recencyScore(date time.Time, settings config.AlgorithmSettings, now time.Time) int {
	daysOld := int(now.Sub(date).Hours() / 24)
	if daysOld < 0 {
		daysOld = 0
	}
	if daysOld > settings.RecencyMaxDays {
		return 0
	}

	points := settings.RecencyMaxPoints - daysOld
	if points < 0 {
		return 0
	}
	return points
}

// sourceCredibilityScore awards the source-credibility weight when the
// article's source case-insensitively contains any configured important
// source.
func sourceCredibilityScore(source string, cfg *config.Config) int {
	if cfg.IsImportantSource(source) {
		return cfg.ScoringWeights.SourceCredibility
	}
	return 0
}

// keywordScore awards the keyword-importance weight once per configured
// keyword found in the title or description (case-insensitive substring).
// Multiplicative in keyword count, not capped.
func keywordScore(article *types.Article, cfg *config.Config) int {
	text := strings.ToLower(article.Title) + " " + strings.ToLower(article.Description)

	score := 0
	for _, keyword := range cfg.ImportanceKeywords {
		keyword = strings.TrimSpace(strings.ToLower(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			score += cfg.ScoringWeights.KeywordImportance
		}
	}
	return score
}

// contentQualityScore awards the long-description bonus when the description
// is strictly longer than long_threshold, else the medium bonus when strictly
// longer than medium_threshold. The tiers are mutually exclusive.
func contentQualityScore(description string, weights config.ContentQualityWeights) int {
	length := len(description)
	switch {
	case length > weights.LongThreshold:
		return weights.LongDescription
	case length > weights.MediumThreshold:
		return weights.MediumDescription
	default:
		return 0
	}
}
