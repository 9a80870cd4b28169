package model

import (
	"path/filepath"
	"strings"
)

// Rule describes how files are routed to a destination folder. A rule can
// match on filename patterns, on normalized extensions, or both. Rules are
// ordered; the first enabled rule that matches wins.
type Rule struct {
	Name        string   `mapstructure:"name"        yaml:"name"`
	Destination string   `mapstructure:"destination" yaml:"destination"`
	Extensions  []string `mapstructure:"extensions"  yaml:"extensions,omitempty"`
	Patterns    []string `mapstructure:"patterns"    yaml:"patterns,omitempty"`
	Enabled     bool     `mapstructure:"enabled"     yaml:"enabled"`
}

// NormalizedExtensions returns the rule's extensions lowercased with a
// leading dot, matching the normalization applied to FileRecord.Ext.
func (r Rule) NormalizedExtensions() []string {
	out := make([]string, 0, len(r.Extensions))
	for _, ext := range r.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// ValidDestination reports whether the rule's destination is a relative
// path that stays inside the organizing root.
func (r Rule) ValidDestination() bool {
	dest := r.Destination
	if dest == "" || filepath.IsAbs(dest) {
		return false
	}
	clean := filepath.Clean(dest)
	return clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
