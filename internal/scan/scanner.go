// Package scan enumerates directory contents into file metadata records.
package scan

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jdoss/filetidy/internal/common"
	"github.com/jdoss/filetidy/internal/model"
)

// Options configures a directory scan.
type Options struct {
	// ExcludeDirs is a list of directory names to skip when recursing.
	ExcludeDirs []string
	// Recursive enables descending into subdirectories.
	Recursive bool
}

// Scanner reads directory trees from disk. It holds no state between
// scans; every call re-reads the filesystem.
type Scanner struct {
	opts Options
}

// NewScanner creates a scanner with the given options.
func NewScanner(opts Options) *Scanner {
	return &Scanner{opts: opts}
}

// Scan walks root and returns a record for every regular file found.
// A missing root wraps common.ErrPathNotFound and an unreadable root wraps
// common.ErrPermission; both are fatal to the run. Symlinks that resolve
// outside root are skipped so later moves cannot escape the organizing root.
func (s *Scanner) Scan(ctx context.Context, root string) ([]model.FileRecord, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewUserError("cannot scan "+root, common.ErrPathNotFound)
		}
		if os.IsPermission(err) {
			return nil, common.NewUserError("cannot scan "+root, common.ErrPermission)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, common.NewUserError("cannot scan "+root, common.ErrNotDirectory)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	// Probe readability up front so an unreadable root is a single fatal
	// error rather than a silent empty scan.
	if _, err := os.ReadDir(absRoot); err != nil {
		if os.IsPermission(err) {
			return nil, common.NewUserError("cannot read "+root, common.ErrPermission)
		}
		return nil, err
	}

	excluded := make(map[string]bool, len(s.opts.ExcludeDirs))
	for _, name := range s.opts.ExcludeDirs {
		excluded[name] = true
	}

	var records []model.FileRecord

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			// Unreadable entries below the root are skipped, not fatal.
			slog.Warn("Skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == absRoot {
			return nil
		}

		if d.IsDir() {
			if !s.opts.Recursive {
				return filepath.SkipDir
			}
			if excluded[d.Name()] || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == common.LockFileName {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if !resolvesInside(path, absRoot) {
				slog.Debug("Skipping symlink outside root", "path", path)
				return nil
			}
		}

		fileInfo, statErr := os.Stat(path)
		if statErr != nil {
			slog.Warn("Skipping unstattable file", "path", path, "error", statErr)
			return nil
		}
		if !fileInfo.Mode().IsRegular() {
			return nil
		}

		records = append(records, model.NewFileRecord(path, fileInfo))
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	slog.Info("Scan complete", "root", root, "files", len(records))
	return records, nil
}

// resolvesInside reports whether the symlink at path points to a target
// within root.
func resolvesInside(path, root string) bool {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
