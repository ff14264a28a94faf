package types

// DateRange describes the earliest and latest dates among selected
// articles. Both fields are null when nothing was selected.
type DateRange struct {
	Earliest *string `json:"earliest"`
	Latest   *string `json:"latest"`
}

// SettingsSnapshot echoes the algorithm settings a run was executed with.
type SettingsSnapshot struct {
	MaxArticles      int `json:"max_articles"`
	RecencyMaxDays   int `json:"recency_max_days"`
	RecencyMaxPoints int `json:"recency_max_points"`
}

// RunSummary aggregates the statistics of one conversion run. It is the
// run's machine-readable record, written as conversion-summary.json.
type RunSummary struct {
	RunID           string `json:"run_id"`
	SourceFile      string `json:"source_file"`
	OutputDirectory string `json:"output_directory"`

	// TotalArticlesProcessed counts records that reached scoring. Records
	// dropped by the content-type filter do not count.
	TotalArticlesProcessed int `json:"total_articles_processed"`
	TotalArticlesSelected  int `json:"total_articles_selected"`
	SkippedRecords         int `json:"skipped_records"`

	DateRange    DateRange `json:"date_range"`
	FilesCreated []string  `json:"files_created"`

	// ExportDate is the run timestamp, formatted as "2006-01-02 15:04:05".
	ExportDate string `json:"export_date"`

	// ConfigSource is "defaults" when the built-in configuration was used,
	// otherwise the path of the loaded config file.
	ConfigSource string `json:"config_source"`

	Settings SettingsSnapshot `json:"algorithm_settings"`
}
