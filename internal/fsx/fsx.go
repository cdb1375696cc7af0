// Package fsx provides the filesystem mutations the tool performs: directory
// creation, no-overwrite move, and no-overwrite copy. Moves fall back to
// copy+remove when source and destination are on different filesystems.
package fsx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// renameFunc is swappable so tests can simulate cross-device failures.
var renameFunc = os.Rename

// EnsureDir creates dir (and parents) if missing; no-op when present.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Move renames src to dst. The destination must not exist: an existing path
// is an error ([fs.ErrExist]), never overwritten. When the rename fails with
// EXDEV (cross-device), the file is copied and the source removed.
func Move(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("destination already exists: %s: %w", dst, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	err := renameFunc(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	if err := Copy(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// Copy streams src to dst without overwriting an existing destination, and
// preserves the source's modification time (so week bucketing of a copy
// matches the original). A partial destination is removed on failure.
func Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("destination already exists: %s: %w", dst, fs.ErrExist)
		}
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	// Best-effort: a copy with the wrong mtime is still a correct copy.
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}

// isCrossDevice reports whether err is a rename failure caused by src and
// dst living on different filesystems.
func isCrossDevice(err error) bool {
	var le *os.LinkError
	if errors.As(err, &le) {
		return errors.Is(le.Err, syscall.EXDEV)
	}
	return errors.Is(err, syscall.EXDEV)
}
