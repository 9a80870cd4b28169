package model

// MatchReason explains why a file was routed to its destination.
type MatchReason string

// Match reason constants.
const (
	ReasonPattern      MatchReason = "matched-pattern"
	ReasonExtension    MatchReason = "matched-extension"
	ReasonDateBucket   MatchReason = "matched-date-bucket"
	ReasonUnclassified MatchReason = "unclassified"
)

// ClassificationDecision is the outcome of classifying a single file.
// Destination is a folder path relative to the organizing root.
type ClassificationDecision struct {
	Record      FileRecord
	Destination string
	RuleName    string
	Reason      MatchReason
}
