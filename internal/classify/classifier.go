// Package classify decides destination folders for scanned files.
package classify

import (
	"fmt"
	"regexp"

	"github.com/jdoss/filetidy/internal/common"
	"github.com/jdoss/filetidy/internal/model"
)

// DefaultUnsortedFolder receives files no rule or date bucket claims.
const DefaultUnsortedFolder = "Unsorted"

// RuleSet is the read-only configuration a classifier is built from.
type RuleSet struct {
	// UnsortedFolder is the fallback destination. Defaults to
	// DefaultUnsortedFolder when empty.
	UnsortedFolder string
	// Rules are evaluated in order; the first enabled match wins.
	Rules []model.Rule
	// DateFolders enables Year/Month bucketing for files no rule matches.
	DateFolders bool
}

// Classifier evaluates files against an ordered rule set. Pattern rules
// take precedence over extension rules, which take precedence over date
// buckets; every file receives a decision.
type Classifier struct {
	patterns map[int][]*regexp.Regexp
	extIndex map[int]map[string]bool
	unsorted string
	rules    []model.Rule
	dateBkt  bool
}

// NewClassifier compiles the rule set into a classifier. Invalid regex
// patterns and rule destinations escaping the root are rejected here so a
// run never starts with a broken rule set.
func NewClassifier(rs RuleSet) (*Classifier, error) {
	unsorted := rs.UnsortedFolder
	if unsorted == "" {
		unsorted = DefaultUnsortedFolder
	}

	c := &Classifier{
		rules:    rs.Rules,
		patterns: make(map[int][]*regexp.Regexp),
		extIndex: make(map[int]map[string]bool),
		unsorted: unsorted,
		dateBkt:  rs.DateFolders,
	}

	for i, rule := range rs.Rules {
		if !rule.ValidDestination() {
			return nil, fmt.Errorf("rule %q: %w", rule.Name, common.ErrRuleDestination)
		}

		exts := make(map[string]bool)
		for _, ext := range rule.NormalizedExtensions() {
			exts[ext] = true
		}
		c.extIndex[i] = exts

		for _, pattern := range rule.Patterns {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("rule %q pattern %q: %w", rule.Name, pattern, common.ErrInvalidPattern)
			}
			c.patterns[i] = append(c.patterns[i], re)
		}
	}

	return c, nil
}

// Classify routes a single file. It is a total function: every record
// receives a decision, falling through to the unsorted folder.
func (c *Classifier) Classify(record model.FileRecord) model.ClassificationDecision {
	// Pattern rules first, in rule order.
	for i, rule := range c.rules {
		if !rule.Enabled {
			continue
		}
		for _, re := range c.patterns[i] {
			if re.MatchString(record.Name) {
				return model.ClassificationDecision{
					Record:      record,
					Destination: rule.Destination,
					RuleName:    rule.Name,
					Reason:      model.ReasonPattern,
				}
			}
		}
	}

	// Extension rules next.
	for i, rule := range c.rules {
		if !rule.Enabled {
			continue
		}
		if c.extIndex[i][record.Ext] {
			return model.ClassificationDecision{
				Record:      record,
				Destination: rule.Destination,
				RuleName:    rule.Name,
				Reason:      model.ReasonExtension,
			}
		}
	}

	if c.dateBkt {
		ts := record.Timestamp()
		if !ts.IsZero() {
			return model.ClassificationDecision{
				Record:      record,
				Destination: ts.Format("2006/January"),
				Reason:      model.ReasonDateBucket,
			}
		}
	}

	return model.ClassificationDecision{
		Record:      record,
		Destination: c.unsorted,
		Reason:      model.ReasonUnclassified,
	}
}
