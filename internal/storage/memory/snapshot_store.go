// Package memory provides in-memory store implementations for tests and
// fixture-driven runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ads-insights-lab/internal/storage"
)

// SnapshotStore is an in-memory implementation of storage.SnapshotStore.
type SnapshotStore struct {
	mu   sync.RWMutex
	data map[string]*storage.Snapshot // keyed by composite key
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{data: make(map[string]*storage.Snapshot)}
}

// Compile-time interface check.
var _ storage.SnapshotStore = (*SnapshotStore)(nil)

func snapshotKey(s *storage.Snapshot) string {
	return fmt.Sprintf("%s|%s|%s|%d", s.AccountID, s.RangeStart, s.RangeEnd, s.ComputedAt.UnixNano())
}

// Insert adds a snapshot. Returns ErrDuplicateKey if the key exists.
func (st *SnapshotStore) Insert(_ context.Context, s *storage.Snapshot) error {
	if s == nil || s.AccountID == "" || s.RangeStart == "" || s.RangeEnd == "" {
		return storage.ErrInvalidInput
	}

	key := snapshotKey(s)

	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.data[key]; exists {
		return storage.ErrDuplicateKey
	}
	cp := *s
	st.data[key] = &cp
	return nil
}

// GetLatest retrieves the most recent snapshot for an account.
func (st *SnapshotStore) GetLatest(_ context.Context, accountID string) (*storage.Snapshot, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var latest *storage.Snapshot
	for _, s := range st.data {
		if s.AccountID != accountID {
			continue
		}
		if latest == nil || s.ComputedAt.After(latest.ComputedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, storage.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

// GetByRange retrieves snapshots for an account and range, ordered by
// computed_at ASC.
func (st *SnapshotStore) GetByRange(_ context.Context, accountID, rangeStart, rangeEnd string) ([]*storage.Snapshot, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var out []*storage.Snapshot
	for _, s := range st.data {
		if s.AccountID == accountID && s.RangeStart == rangeStart && s.RangeEnd == rangeEnd {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ComputedAt.Before(out[j].ComputedAt)
	})
	return out, nil
}
