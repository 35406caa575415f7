// Package scout wires the document pipeline together: discover files,
// parse them to plain text, extract abbreviation candidates, and score
// them.
package scout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scoutdoc/scout/pkg/scout/capability"
	"github.com/scoutdoc/scout/pkg/scout/config"
	"github.com/scoutdoc/scout/pkg/scout/dedup"
	"github.com/scoutdoc/scout/pkg/scout/exclusion"
	"github.com/scoutdoc/scout/pkg/scout/export"
	"github.com/scoutdoc/scout/pkg/scout/extract"
	"github.com/scoutdoc/scout/pkg/scout/history"
	"github.com/scoutdoc/scout/pkg/scout/parser"
	"github.com/scoutdoc/scout/pkg/scout/scanner"
)

// Options configures a Scout instance.
type Options struct {
	Config     config.Config
	Exclusions *exclusion.Set
	Tagger     capability.EntityTagger
	Similarity capability.Similarity

	// History is optional. When set, completed scans are persisted.
	History history.Store
}

// Scout is the main pipeline facade.
type Scout struct {
	cfg        config.Config
	exclusions *exclusion.Set
	tagger     capability.EntityTagger
	similarity capability.Similarity
	history    history.Store
	scanner    *scanner.Scanner
	parser     *parser.Document
}

// FileError records a file that could not be processed. Scans continue
// past these.
type FileError struct {
	Path string
	Err  error
}

// Result is the outcome of one scan.
type Result struct {
	Records    map[string]extract.Record
	Statistics extract.Statistics
	Files      []string
	FileStats  scanner.Stats
	Errors     []FileError

	// ScanID is set when the scan was persisted to history.
	ScanID string
}

// New creates a Scout instance. The config is validated; a nil
// exclusion set falls back to the builtin list.
func New(opts Options) (*Scout, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Exclusions == nil {
		opts.Exclusions = exclusion.Builtin()
	}

	return &Scout{
		cfg:        opts.Config,
		exclusions: opts.Exclusions,
		tagger:     opts.Tagger,
		similarity: opts.Similarity,
		history:    opts.History,
		scanner:    scanner.New(opts.Config.Scanner.Extensions, opts.Config.Scanner.IgnoreGlobs),
		parser:     parser.New(),
	}, nil
}

func (s *Scout) newExtractor(onError func(fileID string, err error)) (*extract.Extractor, error) {
	return extract.New(extract.Options{
		MinLength:        s.cfg.MinLength,
		MaxLength:        s.cfg.MaxLength,
		FrequencyCeiling: s.cfg.FrequencyCeiling,
		Exclusions:       s.exclusions,
		EntityTagger:     s.tagger,
		Similarity:       s.similarity,
		OnError:          onError,
	})
}

// Scan walks the given roots and extracts abbreviations from every
// supported file, one at a time.
func (s *Scout) Scan(ctx context.Context, roots []string) (*Result, error) {
	files, err := s.scanner.ScanAll(roots)
	if err != nil && len(files) == 0 {
		return nil, err
	}

	result := &Result{Files: files, FileStats: s.scanner.Stats()}
	if err != nil {
		result.Errors = append(result.Errors, FileError{Err: err})
	}
	ex, err := s.newExtractor(func(fileID string, err error) {
		result.Errors = append(result.Errors, FileError{Path: fileID, Err: err})
	})
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := s.parser.Parse(path)
		if err != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			continue
		}
		ex.Ingest(text, path)
	}

	s.finish(ctx, result, ex, roots)
	return result, nil
}

// ScanParallel behaves like Scan but shards the files over the given
// number of workers, each with its own extractor, and merges the
// results. The merged output is identical to a sequential scan.
func (s *Scout) ScanParallel(ctx context.Context, roots []string, workers int) (*Result, error) {
	if workers <= 1 {
		return s.Scan(ctx, roots)
	}

	files, err := s.scanner.ScanAll(roots)
	if err != nil && len(files) == 0 {
		return nil, err
	}
	if workers > len(files) {
		workers = len(files)
	}

	result := &Result{Files: files, FileStats: s.scanner.Stats()}
	if err != nil {
		result.Errors = append(result.Errors, FileError{Err: err})
	}
	if len(files) == 0 {
		ex, err := s.newExtractor(nil)
		if err != nil {
			return nil, err
		}
		s.finish(ctx, result, ex, roots)
		return result, nil
	}

	type shard struct {
		ex   *extract.Extractor
		errs []FileError
	}
	shards := make([]shard, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		ex, err := s.newExtractor(func(fileID string, err error) {
			shards[w].errs = append(shards[w].errs, FileError{Path: fileID, Err: err})
		})
		if err != nil {
			return nil, err
		}
		shards[w].ex = ex

		g.Go(func() error {
			for i := w; i < len(files); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				path := files[i]
				text, err := s.parser.Parse(path)
				if err != nil {
					shards[w].errs = append(shards[w].errs, FileError{Path: path, Err: err})
					continue
				}
				shards[w].ex.Ingest(text, path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := shards[0].ex
	result.Errors = append(result.Errors, shards[0].errs...)
	for _, sh := range shards[1:] {
		merged.Merge(sh.ex)
		result.Errors = append(result.Errors, sh.errs...)
	}

	s.finish(ctx, result, merged, roots)
	return result, nil
}

// ScanText extracts abbreviations from a single in-memory document.
func (s *Scout) ScanText(text, label string) (*Result, error) {
	ex, err := s.newExtractor(nil)
	if err != nil {
		return nil, err
	}
	ex.Ingest(text, label)
	return &Result{
		Records:    ex.Records(),
		Statistics: ex.Statistics(),
	}, nil
}

// FindDuplicates scans the given roots and groups files with identical
// content.
func (s *Scout) FindDuplicates(ctx context.Context, roots []string) ([][]string, error) {
	files, err := s.scanner.ScanAll(roots)
	if err != nil && len(files) == 0 {
		return nil, err
	}

	ix := dedup.NewIndex()
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ix.Add(path, content)
	}

	groups := ix.Groups()
	if s.history != nil {
		payload, err := json.Marshal(groups)
		if err == nil {
			if _, err := s.history.Save(ctx, history.Scan{
				Type:         history.ScanDuplicates,
				SourcePath:   strings.Join(roots, ", "),
				SourceType:   "directory",
				TotalResults: len(groups),
				Results:      string(payload),
			}); err != nil {
				return groups, fmt.Errorf("save scan history: %w", err)
			}
		}
	}
	return groups, nil
}

// finish copies the extractor output into the result and persists the
// scan when a history store is configured.
func (s *Scout) finish(ctx context.Context, result *Result, ex *extract.Extractor, roots []string) {
	result.Records = ex.Records()
	result.Statistics = ex.Statistics()

	if s.history == nil {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, result.Records); err != nil {
		result.Errors = append(result.Errors, FileError{Err: fmt.Errorf("serialize results: %w", err)})
		return
	}
	settings, _ := json.Marshal(map[string]int{
		"min_length":        s.cfg.MinLength,
		"max_length":        s.cfg.MaxLength,
		"frequency_ceiling": s.cfg.FrequencyCeiling,
	})

	id, err := s.history.Save(ctx, history.Scan{
		Type:         history.ScanAbbreviations,
		SourcePath:   strings.Join(roots, ", "),
		SourceType:   "directory",
		TotalResults: result.Statistics.Total,
		Results:      buf.String(),
		Settings:     string(settings),
	})
	if err != nil {
		result.Errors = append(result.Errors, FileError{Err: fmt.Errorf("save scan history: %w", err)})
		return
	}
	result.ScanID = id
}
