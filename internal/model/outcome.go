package model

import "time"

// Action describes what happened to a single file during a run.
type Action string

// Per-file outcome actions.
const (
	ActionMoved   Action = "moved"
	ActionRenamed Action = "renamed" // collision resolved with a numeric suffix
	ActionFailed  Action = "failed"
	ActionWarned  Action = "warned" // file could not be hashed
	ActionPlanned Action = "planned" // dry run, no move performed
)

// MoveResult is the per-file outcome of applying a classification decision.
type MoveResult struct {
	SourcePath string
	DestPath   string
	RuleName   string
	Err        error
	Reason     MatchReason
	Action     Action
}

// RunMode selects what a run does.
type RunMode string

// Run modes.
const (
	ModeOrganize   RunMode = "organize"
	ModeDuplicates RunMode = "duplicates"
)

// RunSummary aggregates the outcome of a single run.
type RunSummary struct {
	StartedAt  time.Time
	FinishedAt time.Time
	ID         string
	Root       string
	Mode       RunMode
	Outcomes   []MoveResult
	Duplicates []DuplicateGroup
	Warnings   []string
	Scanned    int
	Moved      int
	Renamed    int
	Failed     int
	DryRun     bool
}

// Succeeded returns the number of files that ended up where the run
// intended, counting collision-renamed files as successes.
func (s RunSummary) Succeeded() int {
	return s.Moved + s.Renamed
}
