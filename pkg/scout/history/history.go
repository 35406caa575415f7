// Package history persists past scan results keyed by scan id.
package history

import (
	"context"
	"time"
)

// ScanType distinguishes what a stored scan produced.
type ScanType string

const (
	ScanAbbreviations ScanType = "abbreviations"
	ScanDuplicates    ScanType = "duplicates"
)

// Scan is one stored scan run. Results is an opaque JSON blob serialized
// by the caller.
type Scan struct {
	ID           string
	Type         ScanType
	SourcePath   string
	SourceType   string // "file" or "directory"
	Date         time.Time
	TotalResults int
	Results      string // JSON
	Settings     string // JSON, optional
	Notes        string
}

// Store is the interface for persisting and querying scan history.
type Store interface {
	// Save stores the scan and returns its id. A scan without an id is
	// assigned one.
	Save(ctx context.Context, s Scan) (string, error)

	// List returns scans newest first, at most limit (0 means all).
	List(ctx context.Context, limit int) ([]Scan, error)

	// Get returns the scan with the given id.
	Get(ctx context.Context, id string) (Scan, bool, error)

	// Delete removes the scan with the given id.
	Delete(ctx context.Context, id string) error

	Close() error
}
