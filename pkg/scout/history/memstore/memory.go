// Package memstore implements the history store in memory, for tests
// and for runs where persistence is not wanted.
package memstore

import (
	"context"
	"crypto/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/scoutdoc/scout/pkg/scout/history"
	"github.com/scoutdoc/scout/pkg/scout/internalerr"
)

type memStore struct {
	mu      sync.RWMutex
	scans   map[string]history.Scan
	entropy *ulid.MonotonicEntropy
	closed  bool
}

// New returns an empty in-memory history store.
func New() history.Store {
	return &memStore{
		scans:   make(map[string]history.Scan),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (m *memStore) Save(ctx context.Context, scan history.Scan) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", internalerr.ErrStoreClosed
	}

	if scan.ID == "" {
		scan.ID = ulid.MustNew(ulid.Now(), m.entropy).String()
	}
	if scan.Date.IsZero() {
		scan.Date = time.Now().UTC()
	}
	m.scans[scan.ID] = scan
	return scan.ID, nil
}

func (m *memStore) List(ctx context.Context, limit int) ([]history.Scan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, internalerr.ErrStoreClosed
	}

	scans := make([]history.Scan, 0, len(m.scans))
	for _, s := range m.scans {
		scans = append(scans, s)
	}
	sort.Slice(scans, func(i, j int) bool {
		if scans[i].Date.Equal(scans[j].Date) {
			return scans[i].ID > scans[j].ID
		}
		return scans[i].Date.After(scans[j].Date)
	})

	if limit > 0 && len(scans) > limit {
		scans = scans[:limit]
	}
	return scans, nil
}

func (m *memStore) Get(ctx context.Context, id string) (history.Scan, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return history.Scan{}, false, internalerr.ErrStoreClosed
	}

	scan, ok := m.scans[id]
	return scan, ok, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return internalerr.ErrStoreClosed
	}

	if _, ok := m.scans[id]; !ok {
		return internalerr.ErrNotFound
	}
	delete(m.scans, id)
	return nil
}

func (m *memStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
