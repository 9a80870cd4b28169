package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jdoss/filetidy/internal/model"
)

// RunRecord is a stored run summary row.
type RunRecord struct {
	StartedAt       time.Time
	FinishedAt      time.Time
	ID              string
	Root            string
	Mode            model.RunMode
	Scanned         int
	Moved           int
	Renamed         int
	Failed          int
	DuplicateGroups int
	Warnings        int
}

// SaveRun persists a run summary and its per-file outcomes in a single
// transaction.
func (s *SQLiteStorage) SaveRun(ctx context.Context, summary *model.RunSummary) error {
	if summary == nil {
		return fmt.Errorf("summary is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, root, mode, started_at, finished_at, scanned, moved, renamed, failed, duplicate_groups, warnings)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.ID, summary.Root, string(summary.Mode),
		summary.StartedAt, summary.FinishedAt,
		summary.Scanned, summary.Moved, summary.Renamed, summary.Failed,
		len(summary.Duplicates), len(summary.Warnings))
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_outcomes (run_id, source_path, dest_path, action, reason, rule_name, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare outcome insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, outcome := range summary.Outcomes {
		var errText sql.NullString
		if outcome.Err != nil {
			errText = sql.NullString{String: outcome.Err.Error(), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			summary.ID, outcome.SourcePath, outcome.DestPath,
			string(outcome.Action), string(outcome.Reason), outcome.RuleName, errText); err != nil {
			return fmt.Errorf("failed to save outcome for %s: %w", outcome.SourcePath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, mode, started_at, finished_at, scanned, moved, renamed, failed, duplicate_groups, warnings
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var mode string
		if err := rows.Scan(&r.ID, &r.Root, &mode, &r.StartedAt, &r.FinishedAt,
			&r.Scanned, &r.Moved, &r.Renamed, &r.Failed, &r.DuplicateGroups, &r.Warnings); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		r.Mode = model.RunMode(mode)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return records, nil
}

// GetRunOutcomes returns the per-file outcomes recorded for a run.
func (s *SQLiteStorage) GetRunOutcomes(ctx context.Context, runID string) ([]model.MoveResult, error) {
	if runID == "" {
		return nil, fmt.Errorf("runID is required")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT source_path, dest_path, action, reason, rule_name, error
		 FROM run_outcomes WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var outcomes []model.MoveResult
	for rows.Next() {
		var o model.MoveResult
		var dest, reason, rule, errText sql.NullString
		var action string
		if err := rows.Scan(&o.SourcePath, &dest, &action, &reason, &rule, &errText); err != nil {
			return nil, fmt.Errorf("failed to scan outcome row: %w", err)
		}
		o.DestPath = dest.String
		o.Action = model.Action(action)
		o.Reason = model.MatchReason(reason.String)
		o.RuleName = rule.String
		if errText.Valid {
			o.Err = fmt.Errorf("%s", errText.String)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outcomes: %w", err)
	}
	return outcomes, nil
}
