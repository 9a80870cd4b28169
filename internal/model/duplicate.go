package model

// DuplicateGroup is a set of two or more files with identical content,
// identified by matching size and then content hash.
type DuplicateGroup struct {
	Hash    string
	Members []FileRecord
	Size    int64
}

// WastedBytes returns the space that could be reclaimed by keeping a
// single member of the group.
func (g DuplicateGroup) WastedBytes() int64 {
	if len(g.Members) < 2 {
		return 0
	}
	return g.Size * int64(len(g.Members)-1)
}
