// Package dedup groups scanned files that share identical content.
package dedup

import (
	"context"
	"log/slog"
	"sort"

	"github.com/jdoss/filetidy/internal/common"
	"github.com/jdoss/filetidy/internal/model"
)

// FindDuplicates groups records by content. Files are bucketed by size
// first so hashes are only computed for candidates that could possibly
// match; within each size bucket of two or more, files are grouped by
// SHA-256 digest. Groups are ordered by descending wasted space, ties
// broken by ascending hash. Unhashable files are dropped from grouping and
// returned as warnings; they never fail the run.
//
// Records are addressed by index so computed hashes are cached on the
// caller's records.
func FindDuplicates(ctx context.Context, records []model.FileRecord) ([]model.DuplicateGroup, []error) {
	bySize := make(map[int64][]int)
	for i := range records {
		bySize[records[i].Size] = append(bySize[records[i].Size], i)
	}

	var groups []model.DuplicateGroup
	var warnings []error

	for size, bucket := range bySize {
		if len(bucket) < 2 {
			continue
		}
		if ctx.Err() != nil {
			return groups, warnings
		}

		byHash := make(map[string][]int)
		for _, i := range bucket {
			hash, err := records[i].Hash()
			if err != nil {
				slog.Warn("Could not hash file", "path", records[i].Path, "error", err)
				warnings = append(warnings, common.NewHashError(records[i].Path, err))
				continue
			}
			byHash[hash] = append(byHash[hash], i)
		}

		for hash, indices := range byHash {
			if len(indices) < 2 {
				continue
			}
			members := make([]model.FileRecord, 0, len(indices))
			for _, i := range indices {
				members = append(members, records[i])
			}
			// Deterministic member order regardless of scan order.
			sort.Slice(members, func(i, j int) bool {
				return members[i].Path < members[j].Path
			})
			groups = append(groups, model.DuplicateGroup{
				Hash:    hash,
				Size:    size,
				Members: members,
			})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		wi, wj := groups[i].WastedBytes(), groups[j].WastedBytes()
		if wi != wj {
			return wi > wj
		}
		return groups[i].Hash < groups[j].Hash
	})

	return groups, warnings
}
