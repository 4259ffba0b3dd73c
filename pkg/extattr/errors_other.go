//go:build !unix

package extattr

// IsNotSupported reports whether err means the filesystem has no extended
// attribute support at all. Without unix errnos to inspect there is
// nothing to classify.
func IsNotSupported(err error) bool {
	return false
}
