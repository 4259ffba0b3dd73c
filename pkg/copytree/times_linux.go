//go:build linux

package copytree

import (
	"io/fs"
	"syscall"
	"time"
)

// statTimes pulls access and modification times out of the kernel stat,
// falling back to the modification time alone when the raw data is
// missing.
func statTimes(info fs.FileInfo) (atime, mtime time.Time) {
	mtime = info.ModTime()
	atime = mtime
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		atime = time.Unix(st.Atim.Unix())
	}
	return atime, mtime
}
