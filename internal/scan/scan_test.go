package scan

import (
	"os"
	"path/filepath"
	"testing"

	"iconforge/internal/errors"
	"iconforge/internal/util"
)

func touch(t *testing.T, path string, size int) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	png := touch(t, filepath.Join(dir, "a.png"), 100)
	jpg := touch(t, filepath.Join(dir, "b.jpg"), 100)
	txt := touch(t, filepath.Join(dir, "c.txt"), 100)

	accepted, rejected, err := Scan([]string{png, jpg, txt}, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(accepted) != 2 {
		t.Errorf("accepted = %v, want 2 entries", accepted)
	}
	if len(rejected) != 1 || !errors.Is(rejected[0].Reason, errors.ErrUnsupportedFormat) {
		t.Errorf("rejected = %+v, want unsupported c.txt", rejected)
	}
}

func TestScanSizeCap(t *testing.T) {
	dir := t.TempDir()
	big := touch(t, filepath.Join(dir, "big.png"), util.MaxInputSize+1)

	accepted, rejected, err := Scan([]string{big}, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(accepted) != 0 {
		t.Errorf("accepted = %v, want none", accepted)
	}
	if len(rejected) != 1 || !errors.Is(rejected[0].Reason, errors.ErrFileTooLarge) {
		t.Errorf("rejected = %+v, want ErrFileTooLarge", rejected)
	}
}

func TestScanDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.png"), 10)
	b := touch(t, filepath.Join(dir, "b.png"), 10)

	accepted, rejected, err := Scan([]string{a, b, a}, Options{Existing: []string{b}})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(accepted) != 1 || accepted[0] != a {
		t.Errorf("accepted = %v, want [%s]", accepted, a)
	}
	// b duplicates the existing batch, the second a duplicates the first.
	if len(rejected) != 2 {
		t.Errorf("rejected = %+v, want 2 entries", rejected)
	}
}

func TestScanMissingPath(t *testing.T) {
	accepted, rejected, err := Scan([]string{filepath.Join(t.TempDir(), "nope.png")}, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(accepted) != 0 || len(rejected) != 1 {
		t.Fatalf("accepted = %v, rejected = %+v", accepted, rejected)
	}
	var ferr *errors.FileError
	if !errors.As(rejected[0].Reason, &ferr) {
		t.Errorf("reason = %v, want *FileError", rejected[0].Reason)
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "z.png"), 10)
	touch(t, filepath.Join(dir, "a.gif"), 10)
	touch(t, filepath.Join(dir, "notes.txt"), 10)
	touch(t, filepath.Join(dir, "sub", "deep.png"), 10)

	var statuses []string
	accepted, _, err := Scan([]string{dir}, Options{
		Status: func(s string) { statuses = append(statuses, s) },
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	// Non-recursive: only the top-level images, sorted.
	if len(accepted) != 2 {
		t.Fatalf("accepted = %v, want 2 entries", accepted)
	}
	if filepath.Base(accepted[0]) != "a.gif" || filepath.Base(accepted[1]) != "z.png" {
		t.Errorf("accepted = %v, want sorted [a.gif z.png]", accepted)
	}
	if len(statuses) == 0 {
		t.Error("no status reported for directory scan")
	}
}

func TestScanDirectoryRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.png"), 10)
	touch(t, filepath.Join(dir, "sub", "deep.png"), 10)

	accepted, _, err := Scan([]string{dir}, Options{Recurse: true})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(accepted) != 2 {
		t.Errorf("accepted = %v, want 2 entries", accepted)
	}
}
