// Package pipeline provides the high-level orchestration for the conversion process.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/news-curator/internal/config"
	"github.com/jonathan/news-curator/internal/ingestion"
	"github.com/jonathan/news-curator/internal/logger"
	"github.com/jonathan/news-curator/internal/output"
	"github.com/jonathan/news-curator/internal/parsing"
	"github.com/jonathan/news-curator/internal/ranking"
	"github.com/jonathan/news-curator/internal/rendering"
	"github.com/jonathan/news-curator/internal/schemas"
	"github.com/jonathan/news-curator/internal/selection"
	"github.com/jonathan/news-curator/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	SourcePath  string
	OutputDir   string // empty: use the configured default output directory
	MaxArticles int    // positive: overrides the configured maximum
	ConfigPath  string // empty: built-in defaults
	Log         logger.Logger
	OnProgress  ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

// Run executes the conversion pipeline as a single linear pass: load config,
// ingest the workbook, normalize and score records, select the top articles,
// allocate filenames, render and write artifacts, and build the run summary.
//
// Config and per-record problems are recovered with logged warnings; an
// unreadable source or a failed write is fatal and produces no summary.
func Run(ctx context.Context, opts RunOptions) (*types.RunSummary, error) {
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}
	now := time.Now()

	// Step 1: Configuration (recoverable-by-design; never fatal)
	cfg, configSource := config.Load(opts.ConfigPath, log)
	emitProgress(&opts, "config", fmt.Sprintf("configuration loaded from %s", configSource), nil)

	// Step 2: Ingest the workbook (fatal on failure)
	records, warnings, err := ingestion.ReadWorkbook(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	for _, w := range warnings {
		log.Warn("source sheet warning", logger.String("warning", w),
			logger.String("source", opts.SourcePath))
	}
	emitProgress(&opts, "ingest", fmt.Sprintf("read %d records from %s", len(records), opts.SourcePath), nil)

	// Step 3: Normalize and score. Excluded records are reported and do not
	// count toward the processed total; one bad row never aborts the run.
	scored := make([]types.ScoredArticle, 0, len(records))
	skipped := 0
	for _, raw := range records {
		article, excluded := parsing.Normalize(raw, now, parsing.ExclusionMarker)
		if excluded {
			skipped++
			log.Info("skipping row: content-type filter matched",
				logger.Int("row", raw.Row), logger.String("marker", parsing.ExclusionMarker))
			continue
		}
		if article.DateDefaulted {
			log.Warn("row date unparsable, defaulted to today",
				logger.Int("row", raw.Row), logger.String("raw_date", raw.Date))
		}
		scored = append(scored, types.ScoredArticle{
			Article: *article,
			Score:   ranking.Score(article, &cfg, now),
		})
	}
	emitProgress(&opts, "score", fmt.Sprintf("scored %d articles, skipped %d", len(scored), skipped), nil)

	// Step 4: Select the top articles
	maxArticles := cfg.AlgorithmSettings.MaxArticles
	if opts.MaxArticles > 0 {
		maxArticles = opts.MaxArticles
	}
	selected := selection.SelectTop(scored, maxArticles)
	emitProgress(&opts, "select", fmt.Sprintf("selected %d of %d articles", len(selected), len(scored)), selected)

	// Step 5: Allocate filenames and render
	filenames := output.AllocateFilenames(selected)
	files := make([]types.OutputFile, len(selected))
	for i := range selected {
		files[i] = types.OutputFile{
			Filename: filenames[i],
			HTML:     rendering.RenderArticle(&selected[i].Article, &cfg),
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 6: Write artifacts (first failure aborts the run)
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = cfg.OutputSettings.DefaultOutputDirectory
	}
	if err := output.WriteArticles(outputDir, files); err != nil {
		return nil, err
	}
	for _, f := range files {
		log.Debug("created article file", logger.String("filename", f.Filename))
	}
	emitProgress(&opts, "write", fmt.Sprintf("wrote %d files to %s", len(files), outputDir), nil)

	stem := strings.TrimSuffix(filepath.Base(opts.SourcePath), filepath.Ext(opts.SourcePath))
	if cfg.OutputSettings.CreateConfigFile {
		if err := output.WriteManifest(outputDir, stem, filenames); err != nil {
			return nil, err
		}
		emitProgress(&opts, "manifest", "wrote "+output.ManifestFilename, nil)
	}

	// Step 7: Build and write the run summary
	summary := output.BuildSummary(output.SummaryParams{
		RunID:        uuid.New().String(),
		SourceFile:   opts.SourcePath,
		OutputDir:    outputDir,
		Processed:    len(scored),
		Skipped:      skipped,
		Selected:     selected,
		Filenames:    filenames,
		Now:          now,
		ConfigSource: configSource,
		Settings:     cfg.Snapshot(opts.MaxArticles),
	})

	if cfg.OutputSettings.CreateSummary {
		data, err := output.WriteSummary(outputDir, summary)
		if err != nil {
			return nil, err
		}
		// Output validation is a safety check, not a requirement.
		if err := schemas.ValidateJSONString(schemas.SummarySchema, string(data)); err != nil {
			log.Warn("summary failed schema validation", logger.Error(err))
		}
		emitProgress(&opts, "summary", "wrote "+output.SummaryFilename, nil)
	}

	return summary, nil
}
