// Package dedup finds files with identical content using a fast content
// hash.
package dedup

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

type fileKey struct {
	hash uint64
	size int
}

// Index accumulates file contents and groups exact duplicates. It keys
// on content hash plus size so a hash collision alone cannot pair two
// different files. Not safe for concurrent use.
type Index struct {
	byKey map[fileKey][]string
}

// NewIndex returns an empty duplicate index.
func NewIndex() *Index {
	return &Index{byKey: make(map[fileKey][]string)}
}

// Add records the content of one file. If an identical file was seen
// before, the first such path is returned with ok true.
func (ix *Index) Add(path string, content []byte) (first string, ok bool) {
	key := fileKey{hash: xxhash.Sum64(content), size: len(content)}
	seen := ix.byKey[key]
	ix.byKey[key] = append(seen, path)
	if len(seen) > 0 {
		return seen[0], true
	}
	return "", false
}

// Groups returns all sets of duplicate paths, one slice per distinct
// content, each sorted, groups ordered by their first path. Singleton
// files are omitted.
func (ix *Index) Groups() [][]string {
	var groups [][]string
	for _, paths := range ix.byKey {
		if len(paths) < 2 {
			continue
		}
		group := append([]string(nil), paths...)
		sort.Strings(group)
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

// Len returns the number of files added so far.
func (ix *Index) Len() int {
	n := 0
	for _, paths := range ix.byKey {
		n += len(paths)
	}
	return n
}
