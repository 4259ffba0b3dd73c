//go:build unix

package extattr

import (
	"syscall"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sys/unix"
)

// IsNotSupported reports whether err means the filesystem has no extended
// attribute support at all, as opposed to a failure on a particular
// attribute. Callers typically downgrade these to a skip.
func IsNotSupported(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return errno == unix.ENOTSUP || errno == unix.EOPNOTSUPP
}
