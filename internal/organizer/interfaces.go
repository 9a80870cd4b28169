package organizer

import (
	"context"

	"github.com/jdoss/filetidy/internal/model"
)

// Scanner enumerates a directory tree into file records.
type Scanner interface {
	Scan(ctx context.Context, root string) ([]model.FileRecord, error)
}

// Classifier routes a single file record to a destination folder.
type Classifier interface {
	Classify(record model.FileRecord) model.ClassificationDecision
}

// Mover applies a classification decision to the filesystem.
type Mover interface {
	Apply(decision model.ClassificationDecision) model.MoveResult
}

// HistoryStore persists run summaries. Recording is best effort; a failing
// store must never fail a run.
type HistoryStore interface {
	SaveRun(ctx context.Context, summary *model.RunSummary) error
}

// ProgressSink receives per-file progress during a run. Implementations
// must tolerate being called with zero totals.
type ProgressSink interface {
	Start(total int)
	Advance()
	Finish()
}
