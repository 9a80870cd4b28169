package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoss/filetidy/internal/common"
	"github.com/jdoss/filetidy/internal/model"
)

func record(name, ext string) model.FileRecord {
	return model.FileRecord{Name: name, Ext: ext}
}

func TestClassifier_Precedence(t *testing.T) {
	rules := []model.Rule{
		{Name: "Reports", Patterns: []string{`^report_`}, Destination: "Reports", Enabled: true},
		{Name: "Text", Extensions: []string{".txt"}, Destination: "Text", Enabled: true},
		{Name: "Images", Extensions: []string{".jpg"}, Destination: "Images", Enabled: true},
	}

	c, err := NewClassifier(RuleSet{Rules: rules})
	require.NoError(t, err)

	tests := []struct {
		name       string
		record     model.FileRecord
		wantDest   string
		wantReason model.MatchReason
		wantRule   string
	}{
		{
			name:       "extension match",
			record:     record("notes.txt", ".txt"),
			wantDest:   "Text",
			wantReason: model.ReasonExtension,
			wantRule:   "Text",
		},
		{
			name:       "case insensitive extension match",
			record:     record("b.JPG", ".jpg"),
			wantDest:   "Images",
			wantReason: model.ReasonExtension,
			wantRule:   "Images",
		},
		{
			name:       "pattern beats extension",
			record:     record("report_draft.txt", ".txt"),
			wantDest:   "Reports",
			wantReason: model.ReasonPattern,
			wantRule:   "Reports",
		},
		{
			name:       "no match falls to unsorted",
			record:     record("archive.xyz", ".xyz"),
			wantDest:   DefaultUnsortedFolder,
			wantReason: model.ReasonUnclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := c.Classify(tt.record)
			assert.Equal(t, tt.wantDest, decision.Destination)
			assert.Equal(t, tt.wantReason, decision.Reason)
			assert.Equal(t, tt.wantRule, decision.RuleName)
		})
	}
}

func TestClassifier_PatternsAreCaseInsensitive(t *testing.T) {
	rules := []model.Rule{
		{Name: "Invoices", Patterns: []string{`^invoice_`}, Destination: "Invoices", Enabled: true},
	}
	c, err := NewClassifier(RuleSet{Rules: rules})
	require.NoError(t, err)

	decision := c.Classify(record("INVOICE_2024.txt", ".txt"))
	assert.Equal(t, "Invoices", decision.Destination)
	assert.Equal(t, model.ReasonPattern, decision.Reason)
}

func TestClassifier_RuleOrderWins(t *testing.T) {
	rules := []model.Rule{
		{Name: "First", Patterns: []string{`draft`}, Destination: "First", Enabled: true},
		{Name: "Second", Patterns: []string{`draft`}, Destination: "Second", Enabled: true},
	}
	c, err := NewClassifier(RuleSet{Rules: rules})
	require.NoError(t, err)

	decision := c.Classify(record("draft.txt", ".txt"))
	assert.Equal(t, "First", decision.Destination)
}

func TestClassifier_DisabledRulesAreSkipped(t *testing.T) {
	rules := []model.Rule{
		{Name: "Text", Extensions: []string{".txt"}, Destination: "Text", Enabled: false},
	}
	c, err := NewClassifier(RuleSet{Rules: rules})
	require.NoError(t, err)

	decision := c.Classify(record("notes.txt", ".txt"))
	assert.Equal(t, model.ReasonUnclassified, decision.Reason)
}

func TestClassifier_DateBucket(t *testing.T) {
	c, err := NewClassifier(RuleSet{DateFolders: true})
	require.NoError(t, err)

	rec := model.FileRecord{
		Name:    "photo.raw",
		Ext:     ".raw",
		ModTime: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
	}

	decision := c.Classify(rec)
	assert.Equal(t, "2024/March", decision.Destination)
	assert.Equal(t, model.ReasonDateBucket, decision.Reason)
}

func TestClassifier_DateBucketFallsBackToCreated(t *testing.T) {
	c, err := NewClassifier(RuleSet{DateFolders: true})
	require.NoError(t, err)

	rec := model.FileRecord{
		Name:    "photo.raw",
		Ext:     ".raw",
		Created: time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC),
	}

	decision := c.Classify(rec)
	assert.Equal(t, "2021/July", decision.Destination)
}

func TestClassifier_RuleBeatsDateBucket(t *testing.T) {
	rules := []model.Rule{
		{Name: "Text", Extensions: []string{".txt"}, Destination: "Text", Enabled: true},
	}
	c, err := NewClassifier(RuleSet{Rules: rules, DateFolders: true})
	require.NoError(t, err)

	rec := model.FileRecord{
		Name:    "notes.txt",
		Ext:     ".txt",
		ModTime: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
	}

	decision := c.Classify(rec)
	assert.Equal(t, "Text", decision.Destination)
	assert.Equal(t, model.ReasonExtension, decision.Reason)
}

func TestClassifier_CustomUnsortedFolder(t *testing.T) {
	c, err := NewClassifier(RuleSet{UnsortedFolder: "Misc"})
	require.NoError(t, err)

	decision := c.Classify(record("anything.bin", ".bin"))
	assert.Equal(t, "Misc", decision.Destination)
}

func TestNewClassifier_RejectsInvalidPattern(t *testing.T) {
	rules := []model.Rule{
		{Name: "Broken", Patterns: []string{`[unclosed`}, Destination: "Broken", Enabled: true},
	}

	_, err := NewClassifier(RuleSet{Rules: rules})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidPattern)
}

func TestNewClassifier_RejectsEscapingDestination(t *testing.T) {
	rules := []model.Rule{
		{Name: "Escape", Extensions: []string{".txt"}, Destination: "../outside", Enabled: true},
	}

	_, err := NewClassifier(RuleSet{Rules: rules})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRuleDestination)
}

func TestDefaultRules_AreValid(t *testing.T) {
	_, err := NewClassifier(RuleSet{Rules: DefaultRules()})
	assert.NoError(t, err)
}
