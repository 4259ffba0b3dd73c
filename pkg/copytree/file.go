package copytree

import (
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// copyFileContents streams src into dst, creating or truncating the
// destination with the source's permission bits.
func copyFileContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Errorf("reading source metadata: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying file content: %w", err)
	}
	if err := out.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}
	return nil
}

// copyStat mirrors permission bits and timestamps from src onto dst.
func copyStat(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Errorf("reading source metadata: %w", err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Errorf("setting permissions: %w", err)
	}
	atime, mtime := statTimes(info)
	if err := os.Chtimes(dst, atime, mtime); err != nil {
		return errors.Errorf("setting timestamps: %w", err)
	}
	return nil
}
