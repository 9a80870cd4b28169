// Package mover applies classification decisions to the filesystem. It is
// the only component with write side effects.
package mover

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jdoss/filetidy/internal/common"
	"github.com/jdoss/filetidy/internal/model"
)

// Mover moves files into destination folders under a fixed organizing
// root, resolving name collisions with numeric suffixes.
type Mover struct {
	root string
}

// NewMover creates a mover rooted at the organizing directory.
func NewMover(root string) *Mover {
	return &Mover{root: root}
}

// Apply moves the decision's file into its destination folder, creating
// the folder if needed. Existing files are never overwritten: a colliding
// name gets a " (n)" suffix before the extension, incremented until free.
// Failures are returned in the result as a MoveError, never as a panic or
// batch abort.
func (m *Mover) Apply(decision model.ClassificationDecision) model.MoveResult {
	result := model.MoveResult{
		SourcePath: decision.Record.Path,
		RuleName:   decision.RuleName,
		Reason:     decision.Reason,
	}

	destDir := filepath.Join(m.root, decision.Destination)
	if err := os.MkdirAll(destDir, 0750); err != nil {
		result.Action = model.ActionFailed
		result.Err = common.NewMoveError(decision.Record.Path, destDir, err)
		return result
	}

	destPath := filepath.Join(destDir, decision.Record.Name)
	renamed := false
	if _, err := os.Lstat(destPath); err == nil {
		destPath = nextFreePath(destDir, decision.Record.Name)
		renamed = true
	}

	if err := moveFile(decision.Record.Path, destPath); err != nil {
		result.Action = model.ActionFailed
		result.Err = common.NewMoveError(decision.Record.Path, destPath, err)
		return result
	}

	result.DestPath = destPath
	if renamed {
		result.Action = model.ActionRenamed
		slog.Debug("Collision resolved", "source", decision.Record.Path, "dest", destPath)
	} else {
		result.Action = model.ActionMoved
	}
	return result
}

// nextFreePath appends " (n)" before the extension until no file exists at
// the candidate path.
func nextFreePath(dir, name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// moveFile renames source to dest, falling back to copy-and-remove when
// the rename crosses a device boundary.
func moveFile(source, dest string) error {
	err := os.Rename(source, dest)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	if copyErr := copyFile(source, dest); copyErr != nil {
		return copyErr
	}
	return os.Remove(source)
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	// O_EXCL keeps the no-overwrite guarantee even if another process
	// created the destination after the collision check.
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		return err
	}
	return out.Close()
}
