package scan

import "github.com/jdoss/filetidy/internal/model"

// Census counts files per normalized extension. Extensionless files are
// counted under the empty string key.
func Census(records []model.FileRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Ext]++
	}
	return counts
}
