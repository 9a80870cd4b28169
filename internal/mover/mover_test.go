package mover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoss/filetidy/internal/common"
	"github.com/jdoss/filetidy/internal/model"
)

func decisionFor(t *testing.T, root, name, content, dest string) model.ClassificationDecision {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	info, err := os.Stat(path)
	require.NoError(t, err)
	return model.ClassificationDecision{
		Record:      model.NewFileRecord(path, info),
		Destination: dest,
		Reason:      model.ReasonExtension,
	}
}

func TestMover_Apply(t *testing.T) {
	root := t.TempDir()
	m := NewMover(root)

	result := m.Apply(decisionFor(t, root, "notes.txt", "hello", "Text"))

	require.NoError(t, result.Err)
	assert.Equal(t, model.ActionMoved, result.Action)
	assert.Equal(t, filepath.Join(root, "Text", "notes.txt"), result.DestPath)

	content, err := os.ReadFile(result.DestPath)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	_, err = os.Stat(result.SourcePath)
	assert.True(t, os.IsNotExist(err), "source should be gone after move")
}

func TestMover_CreatesNestedDestination(t *testing.T) {
	root := t.TempDir()
	m := NewMover(root)

	result := m.Apply(decisionFor(t, root, "pic.jpg", "img", "Media/Images"))

	require.NoError(t, result.Err)
	assert.Equal(t, filepath.Join(root, "Media", "Images", "pic.jpg"), result.DestPath)
}

func TestMover_NeverOverwrites(t *testing.T) {
	root := t.TempDir()
	m := NewMover(root)

	first := m.Apply(decisionFor(t, root, "notes.txt", "first", "Text"))
	require.NoError(t, first.Err)
	require.Equal(t, model.ActionMoved, first.Action)

	second := m.Apply(decisionFor(t, root, "notes.txt", "second", "Text"))
	require.NoError(t, second.Err)
	assert.Equal(t, model.ActionRenamed, second.Action)
	assert.Equal(t, filepath.Join(root, "Text", "notes (1).txt"), second.DestPath)

	// Both contents survive under the destination.
	firstContent, err := os.ReadFile(first.DestPath)
	require.NoError(t, err)
	secondContent, err := os.ReadFile(second.DestPath)
	require.NoError(t, err)
	assert.Equal(t, "first", string(firstContent))
	assert.Equal(t, "second", string(secondContent))
}

func TestMover_CollisionSuffixIncrements(t *testing.T) {
	root := t.TempDir()
	m := NewMover(root)

	var dests []string
	for i := 0; i < 3; i++ {
		result := m.Apply(decisionFor(t, root, "notes.txt", "v", "Text"))
		require.NoError(t, result.Err)
		dests = append(dests, result.DestPath)
	}

	assert.Equal(t, filepath.Join(root, "Text", "notes.txt"), dests[0])
	assert.Equal(t, filepath.Join(root, "Text", "notes (1).txt"), dests[1])
	assert.Equal(t, filepath.Join(root, "Text", "notes (2).txt"), dests[2])
}

func TestMover_SuffixBeforeExtension(t *testing.T) {
	root := t.TempDir()
	m := NewMover(root)

	first := m.Apply(decisionFor(t, root, "archive.tar.gz", "a", "Archives"))
	require.NoError(t, first.Err)
	second := m.Apply(decisionFor(t, root, "archive.tar.gz", "b", "Archives"))
	require.NoError(t, second.Err)

	assert.Equal(t, filepath.Join(root, "Archives", "archive.tar (1).gz"), second.DestPath)
}

func TestMover_MissingSourceFails(t *testing.T) {
	root := t.TempDir()
	m := NewMover(root)

	decision := model.ClassificationDecision{
		Record: model.FileRecord{
			Path: filepath.Join(root, "gone.txt"),
			Name: "gone.txt",
		},
		Destination: "Text",
	}

	result := m.Apply(decision)

	assert.Equal(t, model.ActionFailed, result.Action)
	require.Error(t, result.Err)

	var moveErr *common.MoveError
	assert.ErrorAs(t, result.Err, &moveErr)
}
