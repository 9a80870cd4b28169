// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// LockFileName is the flock file placed inside an organizing root for the
// duration of a run. Scanners must ignore it.
const LockFileName = ".filetidy.lock"

// Common application errors.
var (
	// Scan errors; fatal to a run.
	ErrPathNotFound = errors.New("path not found")
	ErrPermission   = errors.New("permission denied")
	ErrNotDirectory = errors.New("not a directory")

	// Configuration errors.
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrRuleDestination = errors.New("rule destination escapes organizing root")
	ErrInvalidPattern  = errors.New("invalid rule pattern")
	ErrRunLocked       = errors.New("another run holds the lock for this directory")
)

// MoveError represents a failure to move a single file. It is recorded in
// the per-file outcome and never aborts the batch.
type MoveError struct {
	Err    error
	Source string
	Dest   string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("failed to move %s to %s: %v", e.Source, e.Dest, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// NewMoveError creates a MoveError for the given source and destination.
func NewMoveError(source, dest string, err error) error {
	return &MoveError{Source: source, Dest: dest, Err: err}
}

// HashError represents a failure to hash a single file during duplicate
// detection. The file is excluded from grouping and reported as a warning.
type HashError struct {
	Err  error
	Path string
}

func (e *HashError) Error() string {
	return fmt.Sprintf("failed to hash %s: %v", e.Path, e.Err)
}

func (e *HashError) Unwrap() error {
	return e.Err
}

// NewHashError creates a HashError for the given path.
func NewHashError(path string, err error) error {
	return &HashError{Path: path, Err: err}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
