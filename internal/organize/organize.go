// Package organize moves the JPEG and RAW files of a directory into JPG/ and
// RAW/ subdirectories, optionally renaming them with a prefixed sequential
// scheme ordered by camera sequence number.
package organize

import (
	"fmt"
	"path/filepath"

	"github.com/backmassage/pics/internal/fsx"
	"github.com/backmassage/pics/internal/logging"
	"github.com/backmassage/pics/internal/photo"
	"github.com/backmassage/pics/internal/planner"
	"github.com/backmassage/pics/internal/scan"
)

// Options control one organize run.
type Options struct {
	Prefix string // Optional rename prefix; empty keeps original names.
	DryRun bool
	Quiet  bool // Suppress the per-run header/summary (used per week folder by import).
}

// FileError records one per-file failure. Failures never abort the run.
type FileError struct {
	Path string
	Err  error
}

// Report aggregates the outcome of one organize run.
type Report struct {
	FoundJPEG int
	FoundRAW  int
	Moved     int
	MovedJPEG int
	MovedRAW  int
	Failed    int
	Failures  []FileError
	DryRun    bool
}

// Run organizes dir. The returned error covers invocation-level problems
// only (directory unreadable); per-file move failures are logged, collected
// in the report, and never abort the run.
func Run(dir string, opts Options, log *logging.Logger) (Report, error) {
	report := Report{DryRun: opts.DryRun}

	files, warnings, err := scan.Scan(dir, scan.Options{})
	if err != nil {
		return report, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}
	for _, w := range warnings {
		log.Warn("Skipping unreadable file %s: %v", w.Path, w.Err)
	}

	var jpegs, raws []photo.File
	for _, f := range files {
		switch f.Category() {
		case photo.CategoryJPEG:
			jpegs = append(jpegs, f)
		case photo.CategoryRAW:
			raws = append(raws, f)
		}
	}
	report.FoundJPEG = len(jpegs)
	report.FoundRAW = len(raws)

	if len(jpegs) == 0 && len(raws) == 0 {
		log.Info("No JPEG or RAW files found in '%s'", dir)
		return report, nil
	}

	log.Info("Found %d JPEG files and %d RAW files", len(jpegs), len(raws))
	if opts.Prefix != "" {
		log.Info("Renaming with prefix '%s' and sequential numbering", opts.Prefix)
	}
	if opts.DryRun {
		log.Warn("DRY RUN: no files will be moved")
	}

	report.MovedJPEG = moveCategory(dir, photo.CategoryJPEG, jpegs, opts, &report, log)
	report.MovedRAW = moveCategory(dir, photo.CategoryRAW, raws, opts, &report, log)
	report.Moved = report.MovedJPEG + report.MovedRAW

	if !opts.Quiet {
		logSummary(&report, log)
	}
	return report, nil
}

// moveCategory creates the category subdirectory and moves each planned file
// into it. Returns the number of files moved.
func moveCategory(
	dir string,
	cat photo.Category,
	files []photo.File,
	opts Options,
	report *Report,
	log *logging.Logger,
) int {
	if len(files) == 0 {
		return 0
	}

	subdir := filepath.Join(dir, cat.Subdir())
	if opts.DryRun {
		log.Info("Would create directory: %s", subdir)
	} else if err := fsx.EnsureDir(subdir); err != nil {
		// Without the subdirectory every move in this category fails.
		log.Error("Cannot create directory %s: %v", subdir, err)
		for _, f := range files {
			report.Failed++
			report.Failures = append(report.Failures, FileError{Path: f.Path, Err: err})
		}
		return 0
	}

	moved := 0
	for _, r := range planner.BuildRenames(files, opts.Prefix) {
		dst := filepath.Join(subdir, r.Target)

		if opts.DryRun {
			log.Info("  Would move: %s -> %s/%s", r.Source.Name, cat.Subdir(), r.Target)
			continue
		}

		if err := fsx.Move(r.Source.Path, dst); err != nil {
			log.Warn("  Error moving %s: %v", r.Source.Name, err)
			report.Failed++
			report.Failures = append(report.Failures, FileError{Path: r.Source.Path, Err: err})
			continue
		}

		if opts.Prefix != "" {
			log.Info("  Moved and renamed: %s -> %s/%s", r.Source.Name, cat.Subdir(), r.Target)
		} else {
			log.Info("  Moved: %s -> %s/", r.Source.Name, cat.Subdir())
		}
		moved++
	}
	return moved
}

func logSummary(report *Report, log *logging.Logger) {
	if report.DryRun {
		log.Info("Dry run complete: %d files would be moved", report.FoundJPEG+report.FoundRAW)
		return
	}
	if report.Failed > 0 {
		log.Warn("Done: %d moved (%d JPEG, %d RAW), %d failed",
			report.Moved, report.MovedJPEG, report.MovedRAW, report.Failed)
		return
	}
	log.Success("Done: %d moved (%d JPEG, %d RAW)",
		report.Moved, report.MovedJPEG, report.MovedRAW)
}
