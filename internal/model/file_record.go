// Package model defines the core data structures for the filetidy application.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileRecord holds the metadata of a single scanned file. Records are
// immutable after scanning except for the lazily computed content hash.
type FileRecord struct {
	ModTime time.Time
	Created time.Time
	Path    string
	Name    string
	Ext     string
	hash    string
	Size    int64
}

// NewFileRecord builds a FileRecord from the file at path using the given
// stat result. The extension is normalized to lowercase with a leading dot.
func NewFileRecord(path string, info os.FileInfo) FileRecord {
	return FileRecord{
		Path:    path,
		Name:    info.Name(),
		Ext:     strings.ToLower(filepath.Ext(info.Name())),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Created: createdTime(info),
	}
}

// Hash returns the SHA-256 digest of the file contents as a hex string,
// computing and caching it on first use.
func (r *FileRecord) Hash() (string, error) {
	if r.hash != "" {
		return r.hash, nil
	}

	f, err := os.Open(r.Path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	r.hash = hex.EncodeToString(h.Sum(nil))
	return r.hash, nil
}

// HashCached reports the cached hash without computing it.
func (r *FileRecord) HashCached() (string, bool) {
	return r.hash, r.hash != ""
}

// Timestamp returns the modification time, falling back to the creation
// time when the modification time is unavailable.
func (r *FileRecord) Timestamp() time.Time {
	if r.ModTime.IsZero() {
		return r.Created
	}
	return r.ModTime
}
