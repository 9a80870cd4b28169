//go:build !linux

package model

import (
	"os"
	"time"
)

func createdTime(_ os.FileInfo) time.Time {
	return time.Time{}
}
