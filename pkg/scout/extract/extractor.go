// Package extract turns document text into a deduplicated table of
// abbreviation → definition → confidence, merged file by file across a
// corpus with conflicting or missing evidence.
package extract

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/scoutdoc/scout/pkg/scout/capability"
	"github.com/scoutdoc/scout/pkg/scout/exclusion"
	"github.com/scoutdoc/scout/pkg/scout/internalerr"
)

// Default configuration values.
const (
	DefaultMinLength        = 2
	DefaultMaxLength        = 10
	DefaultFrequencyCeiling = 50
)

// Record is the unit of output: everything known about one abbreviation
// across the processed corpus.
type Record struct {
	Token         string
	Definition    string   // best definition found so far, "" if none
	Count         int      // raw occurrences across all files
	SourceFiles   []string // insertion order, membership unique
	Confidence    float64  // belief in the stored definition, in [0,1]
	FirstPosition int      // offset of the first occurrence in its file
}

// Statistics summarizes the corpus.
type Statistics struct {
	Total              int
	WithDefinitions    int
	WithoutDefinitions int
	CoveragePercent    float64 // rounded to 1 decimal, 0 for empty corpus
}

// SortOrder selects the ordering of Sorted.
type SortOrder string

const (
	SortAlpha SortOrder = "alpha"
	SortCount SortOrder = "count"
	SortFiles SortOrder = "files"
)

// Entry pairs a token with its record for ordered listings.
type Entry struct {
	Token  string
	Record Record
}

// Options configures an Extractor.
type Options struct {
	MinLength        int // default 2
	MaxLength        int // default 10
	FrequencyCeiling int // default 50; 0 uses the default, negative disables

	// Exclusions defaults to the built-in set when nil.
	Exclusions *exclusion.Set

	// Optional capability providers. Nil values degrade gracefully.
	EntityTagger capability.EntityTagger
	Similarity   capability.Similarity

	// OnError receives per-file pipeline failures. Ingest never lets a
	// bad file abort a multi-file scan.
	OnError func(fileID string, err error)
}

// Extractor is the corpus aggregator. It is not safe for concurrent use;
// run one scan at a time against one instance, or give each concurrent
// scan its own instance and Merge afterward.
type Extractor struct {
	finder  *Finder
	filter  *Filter
	locator *Locator
	scorer  *Scorer
	onError func(fileID string, err error)
	records map[string]*Record
}

// New creates an Extractor, failing fast on invalid length bounds.
func New(opts Options) (*Extractor, error) {
	if opts.MinLength == 0 {
		opts.MinLength = DefaultMinLength
	}
	if opts.MaxLength == 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.FrequencyCeiling == 0 {
		opts.FrequencyCeiling = DefaultFrequencyCeiling
	}
	if opts.MinLength <= 0 || opts.MaxLength <= 0 {
		return nil, fmt.Errorf("%w: token length bounds must be positive (min=%d max=%d)",
			internalerr.ErrInvalidConfig, opts.MinLength, opts.MaxLength)
	}
	if opts.MinLength > opts.MaxLength {
		return nil, fmt.Errorf("%w: min_length %d exceeds max_length %d",
			internalerr.ErrInvalidConfig, opts.MinLength, opts.MaxLength)
	}

	return &Extractor{
		finder:  NewFinder(opts.MinLength, opts.MaxLength, opts.FrequencyCeiling),
		filter:  NewFilter(opts.Exclusions, opts.EntityTagger),
		locator: NewLocator(),
		scorer:  NewScorer(opts.Similarity),
		onError: opts.OnError,
		records: make(map[string]*Record),
	}, nil
}

// Ingest processes one file's text and merges accepted tokens into the
// corpus. Empty or non-text content is a no-op. Any internal failure is
// confined to this file: the file contributes zero candidates and the
// error is reported through OnError.
func (e *Extractor) Ingest(text, fileID string) {
	defer func() {
		if r := recover(); r != nil {
			if e.onError != nil {
				e.onError(fileID, fmt.Errorf("ingest %s: %v", fileID, r))
			}
		}
	}()

	if strings.TrimSpace(text) == "" {
		return
	}

	candidates, freq := e.finder.Find(text)
	for _, c := range candidates {
		if !e.filter.IsLikelyAbbreviation(c.Token, text) {
			continue
		}
		definition := e.locator.Find(text, c.Token)
		confidence := e.scorer.Score(c.Token, definition, text, c.Offset)
		if confidence < AcceptThreshold {
			continue
		}
		e.merge(c.Token, definition, confidence, c.Offset, freq[c.Token], fileID)
	}
}

// merge applies the asymmetric update rule: the definition fills only if
// empty, while confidence is maximized independently.
func (e *Extractor) merge(token, definition string, confidence float64, position, count int, fileID string) {
	rec, ok := e.records[token]
	if !ok {
		e.records[token] = &Record{
			Token:         token,
			Definition:    definition,
			Count:         count,
			SourceFiles:   []string{fileID},
			Confidence:    confidence,
			FirstPosition: position,
		}
		return
	}

	rec.Count += count
	if !containsString(rec.SourceFiles, fileID) {
		rec.SourceFiles = append(rec.SourceFiles, fileID)
	}
	if rec.Definition == "" && definition != "" {
		rec.Definition = definition
	}
	if confidence > rec.Confidence {
		rec.Confidence = confidence
	}
}

// Merge folds another extractor's corpus into this one. Counts add, file
// sets union in order, definitions fill if empty, confidence keeps the
// maximum. The other extractor is left untouched.
func (e *Extractor) Merge(other *Extractor) {
	if other == nil {
		return
	}
	tokens := make([]string, 0, len(other.records))
	for token := range other.records {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		o := other.records[token]
		rec, ok := e.records[token]
		if !ok {
			clone := *o
			clone.SourceFiles = append([]string(nil), o.SourceFiles...)
			e.records[token] = &clone
			continue
		}
		rec.Count += o.Count
		for _, f := range o.SourceFiles {
			if !containsString(rec.SourceFiles, f) {
				rec.SourceFiles = append(rec.SourceFiles, f)
			}
		}
		if rec.Definition == "" && o.Definition != "" {
			rec.Definition = o.Definition
		}
		if o.Confidence > rec.Confidence {
			rec.Confidence = o.Confidence
		}
	}
}

// Records returns a copy of the corpus keyed by token.
func (e *Extractor) Records() map[string]Record {
	out := make(map[string]Record, len(e.records))
	for token, rec := range e.records {
		out[token] = copyRecord(rec)
	}
	return out
}

// Filter returns the records whose token or definition contains the
// query, case-insensitively.
func (e *Extractor) Filter(query string) map[string]Record {
	query = strings.ToLower(query)
	out := make(map[string]Record)
	for token, rec := range e.records {
		if strings.Contains(strings.ToLower(token), query) ||
			strings.Contains(strings.ToLower(rec.Definition), query) {
			out[token] = copyRecord(rec)
		}
	}
	return out
}

// Sorted returns the corpus ordered by the given criterion. Count and
// file orderings are descending with an alphabetical tie-break.
func (e *Extractor) Sorted(by SortOrder) []Entry {
	entries := make([]Entry, 0, len(e.records))
	for token, rec := range e.records {
		entries = append(entries, Entry{Token: token, Record: copyRecord(rec)})
	}

	switch by {
	case SortCount:
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Record.Count != entries[j].Record.Count {
				return entries[i].Record.Count > entries[j].Record.Count
			}
			return entries[i].Token < entries[j].Token
		})
	case SortFiles:
		sort.Slice(entries, func(i, j int) bool {
			fi, fj := len(entries[i].Record.SourceFiles), len(entries[j].Record.SourceFiles)
			if fi != fj {
				return fi > fj
			}
			return entries[i].Token < entries[j].Token
		})
	default:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Token < entries[j].Token
		})
	}
	return entries
}

// Statistics summarizes the corpus. It never fails, even when empty.
func (e *Extractor) Statistics() Statistics {
	stats := Statistics{Total: len(e.records)}
	for _, rec := range e.records {
		if rec.Definition != "" {
			stats.WithDefinitions++
		}
	}
	stats.WithoutDefinitions = stats.Total - stats.WithDefinitions
	if stats.Total > 0 {
		coverage := float64(stats.WithDefinitions) / float64(stats.Total) * 100
		stats.CoveragePercent = math.Round(coverage*10) / 10
	}
	return stats
}

// Clear resets the corpus. The extractor stays ready for reuse.
func (e *Extractor) Clear() {
	e.records = make(map[string]*Record)
}

func copyRecord(rec *Record) Record {
	out := *rec
	out.SourceFiles = append([]string(nil), rec.SourceFiles...)
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
