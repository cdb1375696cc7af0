// Package week maps file dates to week buckets relative to a fixed epoch
// date (the start of the weekly photo schedule). The internal week index is
// zero-based; the human-facing number used for "Week N" directories is
// one-based.
package week

import (
	"fmt"
	"sort"
	"time"

	"github.com/backmassage/pics/internal/photo"
)

// Index returns the zero-based week index of date relative to epoch:
// the number of whole 7-day periods between the two dates, floor-divided.
// Dates before the epoch yield negative indices; only the date components
// of both arguments are considered.
func Index(date, epoch time.Time) int {
	days := int(dateUTC(date).Sub(dateUTC(epoch)).Hours() / 24)
	return floorDiv(days, 7)
}

// Number converts a zero-based week index to the one-based number used in
// directory names.
func Number(index int) int { return index + 1 }

// DirName returns the directory name for a week index, e.g. "Week 29".
func DirName(index int) string {
	return fmt.Sprintf("Week %d", Number(index))
}

// Start returns the representative date of a week: epoch + index*7 days.
// With the default epoch this is the bucket's Wednesday.
func Start(index int, epoch time.Time) time.Time {
	y, m, d := epoch.Date()
	return time.Date(y, m, d+index*7, 0, 0, 0, 0, epoch.Location())
}

// OnCadenceDay reports whether date falls on the same weekday as the epoch
// (the designated weekly photo day).
func OnCadenceDay(date, epoch time.Time) bool {
	return date.Weekday() == epoch.Weekday()
}

// Bucket groups the files of one 7-day period.
type Bucket struct {
	Index int       // Zero-based week index.
	Start time.Time // Representative date (epoch + Index*7d).
	Files []photo.File
}

// Group buckets files by week index and returns the buckets sorted by index.
// Files dated before the epoch land in negative-index buckets; excluding
// them is the caller's policy, not Group's.
func Group(files []photo.File, epoch time.Time) []Bucket {
	byIndex := make(map[int][]photo.File)
	for _, f := range files {
		idx := Index(f.Date(), epoch)
		byIndex[idx] = append(byIndex[idx], f)
	}

	buckets := make([]Bucket, 0, len(byIndex))
	for idx, group := range byIndex {
		buckets = append(buckets, Bucket{
			Index: idx,
			Start: Start(idx, epoch),
			Files: group,
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Index < buckets[j].Index })
	return buckets
}

// dateUTC rebuilds the date components at midnight UTC so day arithmetic is
// immune to DST transitions in the local zone.
func dateUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
