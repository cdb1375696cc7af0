// Package check provides read-only directory diagnostics for the check
// command: per-extension counts, files lacking a camera sequence number,
// date range, and week span. It never mutates the filesystem.
package check

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/backmassage/pics/internal/display"
	"github.com/backmassage/pics/internal/photo"
	"github.com/backmassage/pics/internal/scan"
	"github.com/backmassage/pics/internal/week"
)

// Logger is the minimal logging interface needed by Run. Defined here
// (rather than importing the logging package) so that check stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
}

// Summary aggregates what Run found.
type Summary struct {
	Files       int
	JPEG        int
	RAW         int
	Other       int // Recognized photo extensions outside the JPEG/RAW categories.
	NoSequence  int // Files whose name carries no digit run.
	ByExtension map[string]int
	Oldest      time.Time
	Newest      time.Time
	FirstWeek   int // Zero-based; meaningful only when Files > 0.
	LastWeek    int
}

// Summarize computes the summary for a scanned file set.
func Summarize(files []photo.File, epoch time.Time) Summary {
	s := Summary{ByExtension: make(map[string]int)}
	for _, f := range files {
		s.Files++
		s.ByExtension[f.Ext]++

		switch f.Category() {
		case photo.CategoryJPEG:
			s.JPEG++
		case photo.CategoryRAW:
			s.RAW++
		default:
			s.Other++
		}
		if !f.HasSeq {
			s.NoSequence++
		}

		date := f.Date()
		idx := week.Index(date, epoch)
		if s.Files == 1 {
			s.Oldest, s.Newest = date, date
			s.FirstWeek, s.LastWeek = idx, idx
			continue
		}
		if date.Before(s.Oldest) {
			s.Oldest = date
		}
		if date.After(s.Newest) {
			s.Newest = date
		}
		if idx < s.FirstWeek {
			s.FirstWeek = idx
		}
		if idx > s.LastWeek {
			s.LastWeek = idx
		}
	}
	return s
}

// Run scans dir recursively (using the import extension set) and prints the
// diagnostics summary. Unreadable files are reported as warnings; only an
// unreadable root is an error.
func Run(dir string, epoch time.Time, extensions map[string]bool, log Logger) error {
	files, warnings, err := scan.Scan(dir, scan.Options{Recursive: true, Extensions: extensions})
	if err != nil {
		return fmt.Errorf("cannot read directory %s: %w", dir, err)
	}
	for _, w := range warnings {
		log.Warn("Skipping unreadable file %s: %v", w.Path, w.Err)
	}

	s := Summarize(files, epoch)
	if s.Files == 0 {
		log.Info("No photo files found in '%s'", dir)
		return nil
	}

	log.Info("Found %d photo files (%d JPEG, %d RAW, %d other)", s.Files, s.JPEG, s.RAW, s.Other)
	if s.NoSequence > 0 {
		log.Warn("%d files have no camera sequence number and would sort last on rename", s.NoSequence)
	}
	log.Info("Dates: %s to %s (%s to %s)",
		s.Oldest.Format("2006-01-02"), s.Newest.Format("2006-01-02"),
		week.DirName(s.FirstWeek), week.DirName(s.LastWeek))
	if s.FirstWeek < 0 {
		log.Warn("Some files are dated before the epoch (%s) and would be skipped on import",
			epoch.Format("2006-01-02"))
	}

	fmt.Println(extensionTable(s))
	return nil
}

// extensionTable renders the per-extension breakdown, most frequent first.
func extensionTable(s Summary) string {
	exts := make([]string, 0, len(s.ByExtension))
	for ext := range s.ByExtension {
		exts = append(exts, ext)
	}
	sort.Slice(exts, func(i, j int) bool {
		if s.ByExtension[exts[i]] != s.ByExtension[exts[j]] {
			return s.ByExtension[exts[i]] > s.ByExtension[exts[j]]
		}
		return exts[i] < exts[j]
	})

	rows := make([][]string, 0, len(exts))
	for _, ext := range exts {
		category := string(photo.Classify("x" + ext))
		rows = append(rows, []string{ext, category, strconv.Itoa(s.ByExtension[ext])})
	}
	return display.RenderTable(
		[]string{"Extension", "Category", "Files"},
		rows,
		[]display.ColumnAlignment{display.AlignLeft, display.AlignLeft, display.AlignRight},
	)
}
