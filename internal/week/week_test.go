package week

import (
	"testing"
	"time"

	"github.com/backmassage/pics/internal/photo"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// The default schedule epoch: Wednesday, November 6, 2024.
var epoch = date(2024, time.November, 6)

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		want int
	}{
		{"epoch day", date(2024, time.November, 6), 0},
		{"last day of first week", date(2024, time.November, 12), 0},
		{"first day of second week", date(2024, time.November, 13), 1},
		{"196 days out", date(2025, time.May, 21), 28},
		{"day before epoch", date(2024, time.November, 5), -1},
		{"seven days before epoch", date(2024, time.October, 30), -1},
		{"eight days before epoch", date(2024, time.October, 29), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.d, epoch); got != tt.want {
				t.Errorf("Index(%s) = %d, want %d", tt.d.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIndex_IgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, time.November, 12, 23, 59, 59, 0, time.Local)
	if got := Index(late, epoch); got != 0 {
		t.Errorf("Index = %d, want 0 (time of day must not matter)", got)
	}
}

func TestNumberAndDirName(t *testing.T) {
	if Number(0) != 1 {
		t.Errorf("Number(0) = %d, want 1", Number(0))
	}
	if Number(28) != 29 {
		t.Errorf("Number(28) = %d, want 29", Number(28))
	}
	if got := DirName(0); got != "Week 1" {
		t.Errorf("DirName(0) = %q", got)
	}
	if got := DirName(28); got != "Week 29" {
		t.Errorf("DirName(28) = %q (no zero padding expected)", got)
	}
}

func TestStart(t *testing.T) {
	tests := []struct {
		index int
		want  time.Time
	}{
		{0, date(2024, time.November, 6)},
		{1, date(2024, time.November, 13)},
		{28, date(2025, time.May, 21)},
	}
	for _, tt := range tests {
		got := Start(tt.index, epoch)
		if !got.Equal(tt.want) {
			t.Errorf("Start(%d) = %v, want %v", tt.index, got, tt.want)
		}
		if got.Weekday() != time.Wednesday {
			t.Errorf("Start(%d) falls on %s, want Wednesday", tt.index, got.Weekday())
		}
	}
}

func TestOnCadenceDay(t *testing.T) {
	if !OnCadenceDay(date(2025, time.May, 21), epoch) { // Wednesday
		t.Error("2025-05-21 (Wednesday) should be on the cadence day")
	}
	if OnCadenceDay(date(2025, time.May, 22), epoch) { // Thursday
		t.Error("2025-05-22 (Thursday) should not be on the cadence day")
	}
}

func TestGroup(t *testing.T) {
	files := []photo.File{
		photo.NewFile("/p/a.jpg", date(2025, time.May, 21), 1),     // week 28
		photo.NewFile("/p/b.jpg", date(2024, time.November, 7), 1), // week 0
		photo.NewFile("/p/c.jpg", date(2025, time.May, 23), 1),     // week 28
		photo.NewFile("/p/d.jpg", date(2024, time.November, 1), 1), // week -1
	}

	buckets := Group(files, epoch)

	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}
	wantIndices := []int{-1, 0, 28}
	for i, b := range buckets {
		if b.Index != wantIndices[i] {
			t.Errorf("bucket[%d].Index = %d, want %d", i, b.Index, wantIndices[i])
		}
		if !b.Start.Equal(Start(b.Index, epoch)) {
			t.Errorf("bucket[%d].Start = %v", i, b.Start)
		}
	}
	if len(buckets[2].Files) != 2 {
		t.Errorf("week 28 holds %d files, want 2", len(buckets[2].Files))
	}
}
