//go:build !linux && !darwin

package copytree

import (
	"io/fs"
	"time"
)

// statTimes reports the best timestamps portably available. Without a
// kernel stat structure to read, the access time mirrors the modification
// time.
func statTimes(info fs.FileInfo) (atime, mtime time.Time) {
	mtime = info.ModTime()
	return mtime, mtime
}
