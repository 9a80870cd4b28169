package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewFileRecord(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Report.PDF", "hello")

	info, err := os.Stat(path)
	require.NoError(t, err)

	record := NewFileRecord(path, info)

	assert.Equal(t, path, record.Path)
	assert.Equal(t, "Report.PDF", record.Name)
	assert.Equal(t, ".pdf", record.Ext, "extension should be normalized to lowercase")
	assert.Equal(t, int64(5), record.Size)
	assert.False(t, record.ModTime.IsZero())
}

func TestFileRecord_Hash(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "identical content")
	otherPath := writeFile(t, dir, "b.txt", "identical content")
	differentPath := writeFile(t, dir, "c.txt", "different content!")

	record := recordFor(t, path)
	other := recordFor(t, otherPath)
	different := recordFor(t, differentPath)

	hash, err := record.Hash()
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	otherHash, err := other.Hash()
	require.NoError(t, err)
	assert.Equal(t, hash, otherHash, "identical content must hash identically")

	differentHash, err := different.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, hash, differentHash)
}

func TestFileRecord_HashCached(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "content")
	record := recordFor(t, path)

	_, ok := record.HashCached()
	assert.False(t, ok, "hash should not be computed before first use")

	first, err := record.Hash()
	require.NoError(t, err)

	// Delete the file; the cached hash must still be served.
	require.NoError(t, os.Remove(path))

	second, err := record.Hash()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	cached, ok := record.HashCached()
	assert.True(t, ok)
	assert.Equal(t, first, cached)
}

func TestFileRecord_Hash_MissingFile(t *testing.T) {
	record := FileRecord{Path: filepath.Join(t.TempDir(), "gone.txt")}

	_, err := record.Hash()
	assert.Error(t, err)
}

func TestFileRecord_Timestamp(t *testing.T) {
	mod := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	withMod := FileRecord{ModTime: mod, Created: created}
	assert.Equal(t, mod, withMod.Timestamp())

	withoutMod := FileRecord{Created: created}
	assert.Equal(t, created, withoutMod.Timestamp(), "should fall back to creation time")
}

func recordFor(t *testing.T, path string) FileRecord {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return NewFileRecord(path, info)
}
