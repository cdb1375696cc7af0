package check

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/backmassage/pics/internal/photo"
)

var epoch = time.Date(2024, time.November, 6, 0, 0, 0, 0, time.Local)

func file(name string, mod time.Time) photo.File {
	return photo.NewFile("/p/"+name, mod, 1)
}

func TestSummarize(t *testing.T) {
	files := []photo.File{
		file("IMG_0001.jpg", time.Date(2024, time.November, 7, 9, 0, 0, 0, time.Local)),
		file("IMG_0002.JPEG", time.Date(2025, time.May, 21, 9, 0, 0, 0, time.Local)),
		file("DSC_0003.cr3", time.Date(2025, time.May, 21, 9, 0, 0, 0, time.Local)),
		file("pano_360.png", time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local)),
		file("untagged.jpg", time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local)),
	}

	s := Summarize(files, epoch)

	if s.Files != 5 {
		t.Errorf("Files = %d", s.Files)
	}
	if s.JPEG != 3 || s.RAW != 1 || s.Other != 1 {
		t.Errorf("categories = (%d, %d, %d), want (3, 1, 1)", s.JPEG, s.RAW, s.Other)
	}
	if s.NoSequence != 1 {
		t.Errorf("NoSequence = %d, want 1 (untagged.jpg)", s.NoSequence)
	}
	if s.ByExtension[".jpg"] != 2 || s.ByExtension[".jpeg"] != 1 {
		t.Errorf("ByExtension = %v", s.ByExtension)
	}
	if s.Oldest.Month() != time.November || s.Newest.Month() != time.May {
		t.Errorf("date range = %v..%v", s.Oldest, s.Newest)
	}
	if s.FirstWeek != 0 || s.LastWeek != 28 {
		t.Errorf("week span = %d..%d, want 0..28", s.FirstWeek, s.LastWeek)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, epoch)
	if s.Files != 0 {
		t.Errorf("Files = %d", s.Files)
	}
}

// logLines records calls so the test can assert on warnings.
type logLines struct {
	infos []string
	warns []string
}

func (l *logLines) Info(format string, args ...interface{}) { l.infos = append(l.infos, format) }
func (l *logLines) Warn(format string, args ...interface{}) { l.warns = append(l.warns, format) }

func TestRun(t *testing.T) {
	dir := t.TempDir()
	mod := time.Date(2024, time.November, 7, 9, 0, 0, 0, time.Local)
	for _, name := range []string{"IMG_0001.jpg", "DSC_0002.cr3", "notes.txt"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}

	var log logLines
	exts := map[string]bool{".jpg": true, ".cr3": true}
	if err := Run(dir, epoch, exts, &log); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(log.infos) == 0 {
		t.Error("Run produced no output")
	}

	// Read-only: nothing may change.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("check mutated the directory: %d entries", len(entries))
	}
}

func TestRun_MissingDirFails(t *testing.T) {
	var log logLines
	if err := Run(filepath.Join(t.TempDir(), "nope"), epoch, nil, &log); err == nil {
		t.Error("Run on a missing directory should fail")
	}
}
