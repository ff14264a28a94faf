// Package types provides type definitions for structured data used throughout the news-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// RawRecord represents a single row read from the tabular source before
// normalization. Any field may be empty or malformed.
type RawRecord struct {
	Row         int // 1-based data row position (for placeholders and error reporting)
	Date        string
	Source      string
	Title       string
	Link        string
	Description string
}

// Article is a normalized news record with canonical field values.
type Article struct {
	// Date is the canonical calendar date of the article.
	Date time.Time `json:"date"`
	// DateDefaulted is true when the raw date could not be parsed and the
	// current date was substituted.
	DateDefaulted bool `json:"date_defaulted,omitempty"`

	Title       string `json:"title"`
	Source      string `json:"source"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// DateKey returns the article date formatted as YYYY-MM-DD, the canonical
// grouping key for filename allocation and date-range reporting.
func (a *Article) DateKey() string {
	return a.Date.Format("2006-01-02")
}

// ScoredArticle pairs a normalized article with its importance score.
// Created by the scorer, consumed by the selector; never mutated afterward.
type ScoredArticle struct {
	Article
	Score int `json:"importance_score"`
}

// OutputFile represents a rendered article ready to be written to disk.
type OutputFile struct {
	Filename string
	HTML     string
}
