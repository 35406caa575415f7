// Package scanner discovers document files under one or more root
// directories, applying extension and glob filters.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner walks directories for supported documents. It skips hidden
// directories and files matching the ignore globs.
type Scanner struct {
	extensions map[string]struct{}
	ignore     []string

	files     []string
	totalSize int64
	byExt     map[string]int
}

// Stats summarizes the last scan.
type Stats struct {
	TotalFiles     int
	TotalSizeBytes int64
	ByExtension    map[string]int
}

// New creates a scanner for the given extensions (with leading dot,
// case-insensitive) and doublestar ignore globs matched against the
// slash-separated path relative to each root.
func New(extensions, ignoreGlobs []string) *Scanner {
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = struct{}{}
	}
	return &Scanner{extensions: exts, ignore: ignoreGlobs, byExt: make(map[string]int)}
}

// ScanDirectory recursively collects supported files under root.
func (s *Scanner) ScanDirectory(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: not a directory", root)
	}

	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := s.extensions[ext]; !ok {
			return nil
		}
		if s.ignored(root, path) {
			return nil
		}

		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return found, nil
}

// ScanAll scans multiple roots, deduplicates, and returns a sorted list.
// Roots that cannot be scanned are skipped; their errors are joined and
// returned alongside the files found elsewhere.
func (s *Scanner) ScanAll(roots []string) ([]string, error) {
	s.files = nil
	s.totalSize = 0
	s.byExt = make(map[string]int)

	seen := make(map[string]struct{})
	var errs []error
	for _, root := range roots {
		files, err := s.ScanDirectory(root)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, f := range files {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				s.files = append(s.files, f)
			}
		}
	}

	sort.Strings(s.files)
	for _, f := range s.files {
		s.byExt[strings.ToLower(filepath.Ext(f))]++
		if fi, err := os.Stat(f); err == nil {
			s.totalSize += fi.Size()
		}
	}
	return s.files, errors.Join(errs...)
}

// Stats reports statistics for the files found by the last ScanAll.
func (s *Scanner) Stats() Stats {
	byExt := make(map[string]int, len(s.byExt))
	for k, v := range s.byExt {
		byExt[k] = v
	}
	return Stats{
		TotalFiles:     len(s.files),
		TotalSizeBytes: s.totalSize,
		ByExtension:    byExt,
	}
}

// ignored reports whether the path matches any ignore glob.
func (s *Scanner) ignored(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
