// Package planner computes rename plans for one category of photo files:
// files are ordered by their camera sequence number and assigned fresh
// sequential names under a user-supplied prefix.
package planner

import (
	"fmt"
	"sort"

	"github.com/backmassage/pics/internal/photo"
)

// Rename maps one scanned file to its target basename.
type Rename struct {
	Source photo.File
	Target string // Target basename (no directory component).
}

// BuildRenames returns the rename plan for files of a single category.
//
// Ordering: ascending camera sequence number; files without a number sort
// after all numbered files, keeping their scan order among themselves; ties
// on the number break by original filename. Indices are assigned 1..N and
// zero-padded to 4 digits: "{prefix}-0001.jpg". The extension is always
// lowercased.
//
// With an empty prefix no renaming happens: every target is the original
// basename and only the order of the plan reflects the sequence numbers.
func BuildRenames(files []photo.File, prefix string) []Rename {
	if len(files) == 0 {
		return nil
	}

	ordered := append([]photo.File(nil), files...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch {
		case a.HasSeq && !b.HasSeq:
			return true
		case !a.HasSeq && b.HasSeq:
			return false
		case !a.HasSeq && !b.HasSeq:
			return false // keep scan order
		case a.Seq != b.Seq:
			return a.Seq < b.Seq
		default:
			return a.Name < b.Name
		}
	})

	renames := make([]Rename, 0, len(ordered))
	for i, f := range ordered {
		target := f.Name
		if prefix != "" {
			target = fmt.Sprintf("%s-%04d%s", prefix, i+1, f.Ext)
		}
		renames = append(renames, Rename{Source: f, Target: target})
	}
	return renames
}
