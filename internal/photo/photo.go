// Package photo classifies photo files by extension and extracts the
// camera-assigned sequence number embedded in their filenames
// (e.g. IMG_1234.JPG -> 1234).
package photo

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Category classifies a photo file by extension.
type Category string

const (
	CategoryJPEG    Category = "jpeg"
	CategoryRAW     Category = "raw"
	CategoryUnknown Category = "unknown"
)

// Subdir returns the fixed directory literal files of this category are
// organized into. Files of CategoryUnknown are never moved.
func (c Category) Subdir() string {
	switch c {
	case CategoryJPEG:
		return "JPG"
	case CategoryRAW:
		return "RAW"
	}
	return ""
}

// Extension to category table. Matching is case-insensitive; anything not
// listed is CategoryUnknown.
var categories = map[string]Category{
	".jpg":  CategoryJPEG,
	".jpeg": CategoryJPEG,
	".cr3":  CategoryRAW,
}

// Classify maps a filename's extension to its category.
func Classify(filename string) Category {
	ext := strings.ToLower(filepath.Ext(filename))
	if c, ok := categories[ext]; ok {
		return c
	}
	return CategoryUnknown
}

var digitRun = regexp.MustCompile(`[0-9]+`)

// SequenceNumber extracts the first maximal run of decimal digits from the
// filename's stem (extension excluded). Returns false when the stem contains
// no digits, or the run does not fit in an int.
func SequenceNumber(filename string) (int, bool) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	run := digitRun.FindString(stem)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}

// File is an immutable snapshot of a photo file taken at scan time.
// It is not re-read after creation.
type File struct {
	Path    string    // Absolute path.
	Name    string    // Base filename.
	Ext     string    // Lowercased extension with leading dot.
	Seq     int       // Camera sequence number; meaningful only when HasSeq.
	HasSeq  bool
	Size    int64     // Size in bytes at scan.
	ModTime time.Time // Filesystem modification time at scan.
}

// NewFile builds a File snapshot from a path and its stat data.
func NewFile(path string, modTime time.Time, size int64) File {
	name := filepath.Base(path)
	seq, ok := SequenceNumber(name)
	return File{
		Path:    path,
		Name:    name,
		Ext:     strings.ToLower(filepath.Ext(name)),
		Seq:     seq,
		HasSeq:  ok,
		Size:    size,
		ModTime: modTime,
	}
}

// Category returns the file's extension category.
func (f File) Category() Category {
	if c, ok := categories[f.Ext]; ok {
		return c
	}
	return CategoryUnknown
}

// Date returns the file's modification date truncated to midnight in the
// file time's location. All date comparisons (after filter, week math) use
// the date component only.
func (f File) Date() time.Time {
	y, m, d := f.ModTime.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, f.ModTime.Location())
}
