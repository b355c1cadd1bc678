package fileutil

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return CopyFileMode(src, dst, 0o644)
}

// CopyFileMode streams src to dst, setting the given file mode on dst.
// Removes dst when the copy fails partway.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

// MoveFile renames src to dst, falling back to copy-and-remove when the two
// paths live on different filesystems. The fallback copies to a temporary
// name beside dst and renames into place, so a torn copy never appears at
// dst.
func MoveFile(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := copyAcrossDevices(src, dst); err != nil {
			return err
		}
		return os.Remove(src)
	}
	return renameErr
}

func copyAcrossDevices(src, dst string) error {
	partial := dst + ".partial"
	if err := CopyFile(src, partial); err != nil {
		_ = os.Remove(partial)
		return err
	}
	return os.Rename(partial, dst)
}
