// Package organizer sequences scanning, classification, duplicate
// detection and moving into complete runs.
package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jdoss/filetidy/internal/dedup"
	"github.com/jdoss/filetidy/internal/model"
)

// Engine drives a single run over one organizing root. A run is
// single-threaded and best effort: individual file failures are recorded
// in the summary and never abort the batch. Cancellation is observed at
// file boundaries only.
type Engine struct {
	scanner    Scanner
	classifier Classifier
	mover      Mover
	history    HistoryStore
	progress   ProgressSink
	root       string
	dryRun     bool
}

// Config holds the dependencies and options for an engine.
type Config struct {
	Scanner    Scanner
	Classifier Classifier
	Mover      Mover
	History    HistoryStore
	Progress   ProgressSink
	Root       string
	DryRun     bool
}

// New creates an engine for one organizing root. Scanner and Classifier
// are required; Mover is required unless DryRun is set. History and
// Progress are optional.
func New(cfg Config) (*Engine, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("organizer: root is required")
	}
	if cfg.Scanner == nil {
		return nil, fmt.Errorf("organizer: scanner is required")
	}
	if cfg.Classifier == nil {
		return nil, fmt.Errorf("organizer: classifier is required")
	}

	return &Engine{
		scanner:    cfg.Scanner,
		classifier: cfg.Classifier,
		mover:      cfg.Mover,
		history:    cfg.History,
		progress:   cfg.Progress,
		root:       cfg.Root,
		dryRun:     cfg.DryRun,
	}, nil
}

// RunOrganize scans the root, classifies every file and applies each
// decision. The returned summary lists a per-file outcome for every
// scanned file.
func (e *Engine) RunOrganize(ctx context.Context) (*model.RunSummary, error) {
	if e.mover == nil && !e.dryRun {
		return nil, fmt.Errorf("organizer: mover is required for organize runs")
	}

	summary := e.newSummary(model.ModeOrganize)

	unlock, err := acquireRunLock(e.root)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := e.scanner.Scan(ctx, e.root)
	if err != nil {
		return nil, err
	}
	summary.Scanned = len(records)

	slog.Info("Starting organize run",
		"run_id", summary.ID,
		"root", e.root,
		"files", len(records),
		"dry_run", e.dryRun)

	if e.progress != nil {
		e.progress.Start(len(records))
	}

	for i := range records {
		select {
		case <-ctx.Done():
			slog.Warn("Run cancelled", "run_id", summary.ID, "processed", i)
			e.finish(ctx, summary)
			return summary, ctx.Err()
		default:
		}

		decision := e.classifier.Classify(records[i])

		var result model.MoveResult
		if e.dryRun {
			result = model.MoveResult{
				SourcePath: decision.Record.Path,
				DestPath:   decision.Destination,
				RuleName:   decision.RuleName,
				Reason:     decision.Reason,
				Action:     model.ActionPlanned,
			}
		} else {
			result = e.mover.Apply(decision)
		}

		switch result.Action {
		case model.ActionMoved:
			summary.Moved++
		case model.ActionRenamed:
			summary.Renamed++
		case model.ActionFailed:
			summary.Failed++
			slog.Error("Failed to move file",
				"path", result.SourcePath,
				"error", result.Err)
		}
		summary.Outcomes = append(summary.Outcomes, result)

		if e.progress != nil {
			e.progress.Advance()
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}

	e.finish(ctx, summary)
	slog.Info("Organize run complete",
		"run_id", summary.ID,
		"moved", summary.Moved,
		"renamed", summary.Renamed,
		"failed", summary.Failed)
	return summary, nil
}

// RunDetectDuplicates scans the root and reports groups of files with
// identical content. No files are moved.
func (e *Engine) RunDetectDuplicates(ctx context.Context) (*model.RunSummary, error) {
	summary := e.newSummary(model.ModeDuplicates)

	records, err := e.scanner.Scan(ctx, e.root)
	if err != nil {
		return nil, err
	}
	summary.Scanned = len(records)

	slog.Info("Starting duplicate detection",
		"run_id", summary.ID,
		"root", e.root,
		"files", len(records))

	groups, warnings := dedup.FindDuplicates(ctx, records)
	summary.Duplicates = groups
	for _, w := range warnings {
		summary.Warnings = append(summary.Warnings, w.Error())
	}

	e.finish(ctx, summary)
	slog.Info("Duplicate detection complete",
		"run_id", summary.ID,
		"groups", len(groups),
		"warnings", len(warnings))
	return summary, ctx.Err()
}

func (e *Engine) newSummary(mode model.RunMode) *model.RunSummary {
	return &model.RunSummary{
		ID:        uuid.NewString(),
		Root:      e.root,
		Mode:      mode,
		DryRun:    e.dryRun,
		StartedAt: time.Now(),
	}
}

// finish stamps the summary and records it. History is best effort.
func (e *Engine) finish(ctx context.Context, summary *model.RunSummary) {
	summary.FinishedAt = time.Now()
	if e.history == nil || summary.DryRun {
		return
	}
	if err := e.history.SaveRun(ctx, summary); err != nil {
		slog.Warn("Failed to record run history", "run_id", summary.ID, "error", err)
	}
}
