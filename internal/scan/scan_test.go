package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/backmassage/pics/internal/photo"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func touchDated(t *testing.T, dir, name string, mod time.Time) string {
	t.Helper()
	path := touch(t, dir, name)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
	return path
}

func basenames(files []photo.File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestScan_FiltersByCategory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "IMG_0001.jpg")
	touch(t, dir, "IMG_0002.JPEG")
	touch(t, dir, "DSC_0003.CR3")
	touch(t, dir, "clip.mp4")
	touch(t, dir, "readme.txt")

	files, warnings, err := Scan(dir, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := []string{"DSC_0003.CR3", "IMG_0001.jpg", "IMG_0002.JPEG"}
	got := basenames(files)
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScan_NonRecursiveIgnoresSubdirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.jpg")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, sub, "nested.jpg")

	files, _, err := Scan(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := basenames(files); !sliceEqual(got, []string{"top.jpg"}) {
		t.Errorf("got %v, want only top.jpg", got)
	}
}

func TestScan_RecursiveDescends(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.jpg")
	sub := filepath.Join(dir, "DCIM", "100CANON")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, sub, "IMG_0001.jpg")

	files, _, err := Scan(dir, Options{Recursive: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2: %v", len(files), basenames(files))
	}
}

func TestScan_AfterFilterInclusive(t *testing.T) {
	dir := t.TempDir()
	threshold := time.Date(2025, 5, 21, 0, 0, 0, 0, time.Local)
	touchDated(t, dir, "before.jpg", threshold.AddDate(0, 0, -1))
	// Same date, late in the day: the date component decides, so included.
	touchDated(t, dir, "boundary.jpg", threshold.Add(18*time.Hour))
	touchDated(t, dir, "after.jpg", threshold.AddDate(0, 0, 3))

	files, _, err := Scan(dir, Options{After: threshold, AfterSet: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"after.jpg", "boundary.jpg"}
	if got := basenames(files); !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScan_CustomExtensionSet(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "shot.png")
	touch(t, dir, "shot.jpg")
	touch(t, dir, "notes.txt")

	files, _, err := Scan(dir, Options{Extensions: map[string]bool{".png": true}})
	if err != nil {
		t.Fatal(err)
	}
	if got := basenames(files); !sliceEqual(got, []string{"shot.png"}) {
		t.Errorf("got %v, want only shot.png", got)
	}
}

func TestScan_MissingRootFails(t *testing.T) {
	if _, _, err := Scan(filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
		t.Error("Scan of a missing root should fail")
	}
}

func TestScan_SortedByPath(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.jpg")
	touch(t, dir, "a.jpg")
	touch(t, dir, "c.jpg")

	files, _, err := Scan(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.jpg", "b.jpg", "c.jpg"}
	if got := basenames(files); !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
