// Package importer copies photos from a source tree (e.g. an SD card) into
// date-bucketed "Week N" folders under a destination root, optionally
// organizing each week folder afterwards.
package importer

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/backmassage/pics/internal/display"
	"github.com/backmassage/pics/internal/fsx"
	"github.com/backmassage/pics/internal/logging"
	"github.com/backmassage/pics/internal/organize"
	"github.com/backmassage/pics/internal/photo"
	"github.com/backmassage/pics/internal/scan"
	"github.com/backmassage/pics/internal/week"
)

// Options control one import run.
type Options struct {
	Weekly   bool      // Keep only files dated on the epoch's weekday.
	After    time.Time // Inclusive lower bound on file date.
	AfterSet bool
	Organize bool   // Run organize on each week folder after copying.
	Prefix   string // Base prefix; per-week effective prefix is "{prefix}-week-{N}".
	DryRun   bool
	Epoch    time.Time
	// Extensions recognized as photos (lowercase, with leading dot).
	Extensions map[string]bool
}

// FileError records one per-file copy failure.
type FileError struct {
	Path string
	Err  error
}

// WeekSummary is the per-bucket slice of the report.
type WeekSummary struct {
	Index int       // Zero-based week index.
	Start time.Time // Representative date of the week.
	Files int
}

// Report aggregates the outcome of one import run.
type Report struct {
	Found     int // Recognized files after the date filter.
	Matched   int // Remaining after the weekly filter.
	PreEpoch  int // Excluded because dated before the epoch.
	Copied    int
	Failed    int
	Bytes     int64 // Bytes copied.
	Weeks     []WeekSummary
	Failures  []FileError
	Organized []organize.Report // One per week folder when Options.Organize.
	DryRun    bool
}

// Run imports photos from source into week folders under destRoot. The
// returned error covers invocation-level problems only (source unreadable);
// per-file copy failures are logged, collected, and never abort the run.
func Run(source, destRoot string, opts Options, log *logging.Logger) (Report, error) {
	report := Report{DryRun: opts.DryRun}

	if opts.AfterSet {
		log.Info("Only importing photos dated %s or later", opts.After.Format("2006-01-02"))
	}
	if opts.Weekly {
		log.Info("Weekly mode: only importing photos from %ss", opts.Epoch.Weekday())
	}

	log.Info("Scanning for photo files in %s...", source)
	files, warnings, err := scan.Scan(source, scan.Options{
		Recursive:  true,
		After:      opts.After,
		AfterSet:   opts.AfterSet,
		Extensions: opts.Extensions,
	})
	if err != nil {
		return report, fmt.Errorf("cannot read source directory %s: %w", source, err)
	}
	for _, w := range warnings {
		log.Warn("Skipping unreadable file %s: %v", w.Path, w.Err)
	}

	report.Found = len(files)

	files = applyWeeklyFilter(files, opts)
	report.Matched = len(files)

	if len(files) == 0 {
		switch {
		case opts.Weekly:
			log.Info("No photos found from weekly photo days (%ss)", opts.Epoch.Weekday())
		case opts.AfterSet:
			log.Info("No photos found after %s", opts.After.Format("2006-01-02"))
		default:
			log.Info("No photo files found in source directory")
		}
		return report, nil
	}

	log.Info("Found %d photo files", report.Found)

	buckets := dropPreEpoch(week.Group(files, opts.Epoch), &report, log)
	if len(buckets) == 0 {
		log.Info("No photos dated on or after the epoch (%s)", opts.Epoch.Format("2006-01-02"))
		return report, nil
	}

	log.Info("After filtering: %d files in %d weeks", report.Matched-report.PreEpoch, len(buckets))
	printWeekTable(buckets)

	if opts.DryRun {
		log.Warn("DRY RUN: no directories will be created, no files copied")
	}

	for _, b := range buckets {
		report.Weeks = append(report.Weeks, WeekSummary{Index: b.Index, Start: b.Start, Files: len(b.Files)})
		importBucket(destRoot, b, opts, &report, log)
	}

	logSummary(&report, log)
	return report, nil
}

// applyWeeklyFilter drops files not dated on the epoch's weekday.
func applyWeeklyFilter(files []photo.File, opts Options) []photo.File {
	if !opts.Weekly {
		return files
	}
	kept := files[:0]
	for _, f := range files {
		if week.OnCadenceDay(f.Date(), opts.Epoch) {
			kept = append(kept, f)
		}
	}
	return kept
}

// dropPreEpoch removes negative-index buckets (files dated before the epoch).
// They are excluded, not clamped into Week 1.
func dropPreEpoch(buckets []week.Bucket, report *Report, log *logging.Logger) []week.Bucket {
	kept := buckets[:0]
	for _, b := range buckets {
		if b.Index < 0 {
			for _, f := range b.Files {
				log.Warn("Skipping %s: dated %s, before the epoch", f.Name, f.Date().Format("2006-01-02"))
				report.PreEpoch++
			}
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// importBucket creates the week directory and copies each file into it.
func importBucket(destRoot string, b week.Bucket, opts Options, report *Report, log *logging.Logger) {
	dir := filepath.Join(destRoot, week.DirName(b.Index))

	if opts.DryRun {
		log.Info("Would create directory: %s", dir)
	} else if err := fsx.EnsureDir(dir); err != nil {
		log.Error("Cannot create directory %s: %v", dir, err)
		for _, f := range b.Files {
			report.Failed++
			report.Failures = append(report.Failures, FileError{Path: f.Path, Err: err})
		}
		return
	}

	for _, f := range b.Files {
		dst := filepath.Join(dir, f.Name)

		if opts.DryRun {
			log.Info("  Would copy: %s", f.Name)
			continue
		}

		if err := fsx.Copy(f.Path, dst); err != nil {
			log.Warn("  Error copying %s: %v", f.Name, err)
			report.Failed++
			report.Failures = append(report.Failures, FileError{Path: f.Path, Err: err})
			continue
		}
		log.Info("  Copied: %s", f.Name)
		report.Copied++
		report.Bytes += f.Size
	}

	organizeBucket(dir, b, opts, report, log)
}

// organizeBucket runs organize on a freshly imported week folder.
func organizeBucket(dir string, b week.Bucket, opts Options, report *Report, log *logging.Logger) {
	if !opts.Organize {
		return
	}

	prefix := ""
	if opts.Prefix != "" {
		prefix = opts.Prefix + "-week-" + strconv.Itoa(week.Number(b.Index))
	}

	if opts.DryRun {
		if prefix != "" {
			log.Info("  Would organize %s with prefix '%s'", week.DirName(b.Index), prefix)
		} else {
			log.Info("  Would organize %s", week.DirName(b.Index))
		}
		return
	}

	log.Info("Organizing %s", week.DirName(b.Index))
	orgReport, err := organize.Run(dir, organize.Options{Prefix: prefix, Quiet: true}, log)
	if err != nil {
		log.Error("Cannot organize %s: %v", dir, err)
		return
	}
	report.Organized = append(report.Organized, orgReport)
}

// printWeekTable lists the week buckets about to be imported.
func printWeekTable(buckets []week.Bucket) {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			week.DirName(b.Index),
			b.Start.Format("2006-01-02"),
			strconv.Itoa(len(b.Files)),
		})
	}
	fmt.Println(display.RenderTable(
		[]string{"Week", "Date", "Files"},
		rows,
		[]display.ColumnAlignment{display.AlignLeft, display.AlignLeft, display.AlignRight},
	))
}

func logSummary(report *Report, log *logging.Logger) {
	if report.DryRun {
		log.Info("Dry run complete: %d files in %d weeks would be copied", report.Matched-report.PreEpoch, len(report.Weeks))
		return
	}

	var orgMoved, orgFailed int
	for _, r := range report.Organized {
		orgMoved += r.Moved
		orgFailed += r.Failed
	}

	if report.Failed+orgFailed > 0 {
		log.Warn("Import done: %d copied (%s), %d failed", report.Copied, display.FormatBytes(report.Bytes), report.Failed)
	} else {
		log.Success("Import complete: %d files copied (%s) into %d weeks", report.Copied, display.FormatBytes(report.Bytes), len(report.Weeks))
	}
	if len(report.Organized) > 0 {
		if orgFailed > 0 {
			log.Warn("Organized week folders: %d moved, %d failed", orgMoved, orgFailed)
		} else {
			log.Info("Organized week folders: %d moved", orgMoved)
		}
	}
}
