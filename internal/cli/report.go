package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jdoss/filetidy/internal/model"
)

// RenderSummary writes a human-readable report of an organize run.
func RenderSummary(w io.Writer, summary *model.RunSummary) {
	title := "Organize run"
	if summary.DryRun {
		title = "Organize run (dry run)"
	}
	fmt.Fprintln(w, TitleStyle.Render(title))

	fmt.Fprintf(w, "  %s %d files scanned\n", SubtleStyle.Render("·"), summary.Scanned)
	fmt.Fprintf(w, "  %s %s\n", SuccessStyle.Render("✓"),
		fmt.Sprintf("%d moved, %d renamed on collision", summary.Moved, summary.Renamed))
	if summary.Failed > 0 {
		fmt.Fprintf(w, "  %s %d failed\n", ErrorStyle.Render("✗"), summary.Failed)
	}

	for _, outcome := range summary.Outcomes {
		switch outcome.Action {
		case model.ActionFailed:
			fmt.Fprintf(w, "    %s %s: %v\n",
				ErrorStyle.Render("failed"), outcome.SourcePath, outcome.Err)
		case model.ActionRenamed:
			fmt.Fprintf(w, "    %s %s -> %s\n",
				WarningStyle.Render("renamed"), outcome.SourcePath, outcome.DestPath)
		case model.ActionPlanned:
			fmt.Fprintf(w, "    %s %s -> %s (%s)\n",
				SubtleStyle.Render("would move"), outcome.SourcePath, outcome.DestPath, outcome.Reason)
		}
	}
}

// RenderDuplicates writes a report of duplicate groups, largest waste
// first.
func RenderDuplicates(w io.Writer, summary *model.RunSummary) {
	fmt.Fprintln(w, TitleStyle.Render("Duplicate files"))

	if len(summary.Duplicates) == 0 {
		fmt.Fprintf(w, "  %s\n", SuccessStyle.Render("No duplicates found"))
	}

	var wasted int64
	for i, group := range summary.Duplicates {
		wasted += group.WastedBytes()
		fmt.Fprintf(w, "  %s %s each, %s wasted\n",
			BoldStyle.Render(fmt.Sprintf("Group %d:", i+1)),
			humanize.Bytes(uint64(group.Size)),
			humanize.Bytes(uint64(group.WastedBytes())))
		fmt.Fprintf(w, "    %s\n", SubtleStyle.Render("sha256 "+shortHash(group.Hash)))
		for _, member := range group.Members {
			fmt.Fprintf(w, "    %s\n", member.Path)
		}
	}

	if len(summary.Duplicates) > 0 {
		fmt.Fprintf(w, "  %s %s reclaimable across %d groups\n",
			SubtleStyle.Render("·"), humanize.Bytes(uint64(wasted)), len(summary.Duplicates))
	}

	for _, warning := range summary.Warnings {
		fmt.Fprintf(w, "  %s %s\n", WarningStyle.Render("warning:"), warning)
	}
}

// RenderCensus writes extension counts, most common first.
func RenderCensus(w io.Writer, counts map[string]int) {
	fmt.Fprintln(w, TitleStyle.Render("Files by extension"))

	type entry struct {
		ext   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for ext, count := range counts {
		entries = append(entries, entry{ext: ext, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].ext < entries[j].ext
	})

	for _, e := range entries {
		ext := e.ext
		if ext == "" {
			ext = "(none)"
		}
		fmt.Fprintf(w, "  %-12s %d\n", ext, e.count)
	}
}

// RenderRules writes the configured rule list in evaluation order.
func RenderRules(w io.Writer, rules []model.Rule) {
	fmt.Fprintln(w, TitleStyle.Render("Rules"))

	for i, rule := range rules {
		state := SuccessStyle.Render("enabled")
		if !rule.Enabled {
			state = SubtleStyle.Render("disabled")
		}
		fmt.Fprintf(w, "  %d. %s -> %s (%s)\n", i+1, BoldStyle.Render(rule.Name), rule.Destination, state)
		if len(rule.Patterns) > 0 {
			fmt.Fprintf(w, "     patterns: %s\n", strings.Join(rule.Patterns, ", "))
		}
		if len(rule.Extensions) > 0 {
			fmt.Fprintf(w, "     extensions: %s\n", strings.Join(rule.NormalizedExtensions(), ", "))
		}
	}
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
