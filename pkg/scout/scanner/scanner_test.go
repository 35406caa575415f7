package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirectoryFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.txt"), "text")
	writeFile(t, filepath.Join(dir, "notes.md"), "notes")
	writeFile(t, filepath.Join(dir, "image.png"), "binary")
	writeFile(t, filepath.Join(dir, "sub", "page.html"), "<p>hi</p>")

	s := New([]string{".txt", "md", ".html"}, nil)
	files, err := s.ScanDirectory(dir)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	if len(files) != 3 {
		t.Errorf("Expected 3 files, got %v", files)
	}
	for _, f := range files {
		if filepath.Ext(f) == ".png" {
			t.Errorf("Unsupported extension should be skipped: %s", f)
		}
	}
}

func TestScanSkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "visible.txt"), "a")
	writeFile(t, filepath.Join(dir, ".git", "hidden.txt"), "b")

	s := New([]string{".txt"}, nil)
	files, err := s.ScanDirectory(dir)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	if len(files) != 1 {
		t.Errorf("Hidden directory contents should be skipped, got %v", files)
	}
}

func TestScanIgnoreGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "a")
	writeFile(t, filepath.Join(dir, "drafts", "skip.txt"), "b")

	s := New([]string{".txt"}, []string{"drafts/**"})
	files, err := s.ScanDirectory(dir)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "keep.txt" {
		t.Errorf("Ignore glob should exclude drafts, got %v", files)
	}
}

func TestScanAllDeduplicatesAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")

	s := New([]string{".txt"}, nil)
	files, err := s.ScanAll([]string{dir, dir})
	if err != nil {
		t.Fatalf("ScanAll failed: %v", err)
	}

	if len(files) != 2 {
		t.Errorf("Duplicate roots should not duplicate files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.txt" {
		t.Errorf("Files should be sorted, got %v", files)
	}

	stats := s.Stats()
	if stats.TotalFiles != 2 || stats.ByExtension[".txt"] != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestScanAllSkipsMissingRoots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")

	s := New([]string{".txt"}, nil)
	files, err := s.ScanAll([]string{dir, filepath.Join(dir, "missing")})

	if len(files) != 1 {
		t.Errorf("Good roots should still be scanned, got %v", files)
	}
	if err == nil {
		t.Error("Missing root should be reported")
	}
}
