//go:build linux

package model

import (
	"os"
	"syscall"
	"time"
)

// createdTime extracts the inode change time, the closest thing to a
// creation timestamp the portable stat result carries on Linux.
func createdTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return time.Time{}
}
