// Package scan lists photo files in a directory, optionally recursively,
// applying extension and date filters. Each call re-reads the filesystem and
// returns a fully materialized, path-sorted slice; unreadable entries are
// collected as warnings instead of aborting the scan.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/backmassage/pics/internal/photo"
)

// Options control a single scan.
type Options struct {
	Recursive bool
	After     time.Time // Inclusive lower bound on the file's date component.
	AfterSet  bool
	// Extensions is the accepted set (lowercase, with leading dot).
	// Nil means "organize categories only" (.jpg/.jpeg/.cr3).
	Extensions map[string]bool
}

// Warning records a non-fatal per-file problem encountered during a scan.
type Warning struct {
	Path string
	Err  error
}

// Scan lists the photo files under root. A failure to read root itself is
// returned as the error; per-entry failures (permission, file disappeared
// mid-scan) become warnings and the scan continues.
func Scan(root string, opts Options) ([]photo.File, []Warning, error) {
	var (
		files    []photo.File
		warnings []Warning
	)

	accept := func(path string, info fs.FileInfo) {
		f := photo.NewFile(path, info.ModTime(), info.Size())
		if opts.AfterSet && f.Date().Before(dateOnly(opts.After)) {
			return
		}
		files = append(files, f)
	}

	if opts.Recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				warnings = append(warnings, Warning{Path: path, Err: err})
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if !wanted(d.Name(), opts.Extensions) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				warnings = append(warnings, Warning{Path: path, Err: err})
				return nil
			}
			accept(path, info)
			return nil
		})
		if err != nil {
			return nil, warnings, err
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !wanted(entry.Name(), opts.Extensions) {
				continue
			}
			path := filepath.Join(root, entry.Name())
			info, err := entry.Info()
			if err != nil {
				warnings = append(warnings, Warning{Path: path, Err: err})
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
			accept(path, info)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, warnings, nil
}

// wanted reports whether the filename's extension is in the accepted set.
func wanted(name string, extensions map[string]bool) bool {
	if extensions == nil {
		return photo.Classify(name) != photo.CategoryUnknown
	}
	return extensions[strings.ToLower(filepath.Ext(name))]
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
