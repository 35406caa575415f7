// Package sqlite implements the history store on SQLite.
package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/scoutdoc/scout/pkg/scout/history"
)

type sqliteStore struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens (creating if needed) a scan history database with WAL mode
// enabled.
func Open(ctx context.Context, path string) (history.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS scans (
	id TEXT PRIMARY KEY,
	scan_type TEXT NOT NULL,
	source_path TEXT NOT NULL,
	source_type TEXT NOT NULL,
	scan_date TEXT NOT NULL,
	total_results INTEGER NOT NULL,
	results_data TEXT NOT NULL,
	settings TEXT,
	notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_scan_date ON scans(scan_date DESC);
CREATE INDEX IF NOT EXISTS idx_scan_type ON scans(scan_type);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// Save implements history.Store.
func (s *sqliteStore) Save(ctx context.Context, scan history.Scan) (string, error) {
	if scan.ID == "" {
		scan.ID = ulid.MustNew(ulid.Now(), s.entropy).String()
	}
	if scan.Date.IsZero() {
		scan.Date = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO scans
	(id, scan_type, source_path, source_type, scan_date, total_results, results_data, settings, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		scan.ID, string(scan.Type), scan.SourcePath, scan.SourceType,
		scan.Date.Format(time.RFC3339), scan.TotalResults, scan.Results,
		scan.Settings, scan.Notes)
	if err != nil {
		return "", fmt.Errorf("save scan: %w", err)
	}
	return scan.ID, nil
}

// List implements history.Store.
func (s *sqliteStore) List(ctx context.Context, limit int) ([]history.Scan, error) {
	query := `
SELECT id, scan_type, source_path, source_type, scan_date, total_results, results_data, settings, notes
FROM scans ORDER BY scan_date DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []history.Scan
	for rows.Next() {
		scan, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}
	return scans, rows.Err()
}

// Get implements history.Store.
func (s *sqliteStore) Get(ctx context.Context, id string) (history.Scan, bool, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, scan_type, source_path, source_type, scan_date, total_results, results_data, settings, notes
FROM scans WHERE id = ?`, id)
	if err != nil {
		return history.Scan{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return history.Scan{}, false, rows.Err()
	}
	scan, err := scanRow(rows)
	if err != nil {
		return history.Scan{}, false, err
	}
	return scan, true, nil
}

// Delete implements history.Store.
func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scans WHERE id = ?", id)
	return err
}

func scanRow(rows *sql.Rows) (history.Scan, error) {
	var (
		scan     history.Scan
		scanType string
		date     string
		settings sql.NullString
		notes    sql.NullString
	)
	if err := rows.Scan(&scan.ID, &scanType, &scan.SourcePath, &scan.SourceType,
		&date, &scan.TotalResults, &scan.Results, &settings, &notes); err != nil {
		return history.Scan{}, err
	}

	scan.Type = history.ScanType(scanType)
	scan.Settings = settings.String
	scan.Notes = notes.String
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		scan.Date = t
	}
	return scan, nil
}
