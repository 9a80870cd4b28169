package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoss/filetidy/internal/common"
	"github.com/jdoss/filetidy/internal/model"
)

func write(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content"), 0600))
}

func names(records []model.FileRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestScanner_TopLevelOnly(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.txt")
	write(t, root, "b.jpg")
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0750))
	write(t, sub, "nested.txt")

	scanner := NewScanner(Options{})
	records, err := scanner.Scan(context.Background(), root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt", "b.jpg"}, names(records))
}

func TestScanner_Recursive(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.txt")
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0750))
	write(t, sub, "nested.txt")

	scanner := NewScanner(Options{Recursive: true})
	records, err := scanner.Scan(context.Background(), root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt", "nested.txt"}, names(records))
}

func TestScanner_SkipsHiddenAndExcludedDirs(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.txt")
	hidden := filepath.Join(root, ".git")
	require.NoError(t, os.Mkdir(hidden, 0750))
	write(t, hidden, "config")
	excluded := filepath.Join(root, "node_modules")
	require.NoError(t, os.Mkdir(excluded, 0750))
	write(t, excluded, "pkg.json")

	scanner := NewScanner(Options{Recursive: true, ExcludeDirs: []string{"node_modules"}})
	records, err := scanner.Scan(context.Background(), root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt"}, names(records))
}

func TestScanner_MissingRoot(t *testing.T) {
	scanner := NewScanner(Options{})

	_, err := scanner.Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPathNotFound)
}

func TestScanner_RootIsFile(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.txt")

	scanner := NewScanner(Options{})
	_, err := scanner.Scan(context.Background(), filepath.Join(root, "a.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotDirectory)
}

func TestScanner_SkipsSymlinkOutsideRoot(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	write(t, root, "a.txt")
	write(t, outside, "target.txt")

	require.NoError(t, os.Symlink(
		filepath.Join(outside, "target.txt"),
		filepath.Join(root, "escape.txt")))

	scanner := NewScanner(Options{})
	records, err := scanner.Scan(context.Background(), root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt"}, names(records))
}

func TestScanner_FollowsSymlinkInsideRoot(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.txt")
	require.NoError(t, os.Symlink(
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "alias.txt")))

	scanner := NewScanner(Options{})
	records, err := scanner.Scan(context.Background(), root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt", "alias.txt"}, names(records))
}

func TestScanner_SkipsLockFile(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.txt")
	write(t, root, common.LockFileName)

	scanner := NewScanner(Options{})
	records, err := scanner.Scan(context.Background(), root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt"}, names(records))
}

func TestScanner_Restartable(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.txt")

	scanner := NewScanner(Options{})
	first, err := scanner.Scan(context.Background(), root)
	require.NoError(t, err)

	write(t, root, "b.txt")

	second, err := scanner.Scan(context.Background(), root)
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 2, "each scan re-reads the disk")
}

func TestCensus(t *testing.T) {
	records := []model.FileRecord{
		{Name: "a.txt", Ext: ".txt"},
		{Name: "b.txt", Ext: ".txt"},
		{Name: "c.jpg", Ext: ".jpg"},
		{Name: "Makefile", Ext: ""},
	}

	counts := Census(records)

	assert.Equal(t, map[string]int{".txt": 2, ".jpg": 1, "": 1}, counts)
}
