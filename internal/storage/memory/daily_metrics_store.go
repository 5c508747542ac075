package memory

import (
	"context"
	"sort"
	"sync"

	"ads-insights-lab/internal/storage"
)

// DailyMetricsStore is an in-memory implementation of
// storage.DailyMetricsStore.
type DailyMetricsStore struct {
	mu   sync.RWMutex
	data map[string]*storage.DailyMetricRow // keyed by account_id|date
}

// NewDailyMetricsStore creates a new in-memory daily metrics store.
func NewDailyMetricsStore() *DailyMetricsStore {
	return &DailyMetricsStore{data: make(map[string]*storage.DailyMetricRow)}
}

// Compile-time interface check.
var _ storage.DailyMetricsStore = (*DailyMetricsStore)(nil)

func rowKey(r *storage.DailyMetricRow) string {
	return r.AccountID + "|" + r.Date
}

// InsertBulk adds multiple rows atomically. Fails entire batch on any
// duplicate, existing or intra-batch.
func (st *DailyMetricsStore) InsertBulk(_ context.Context, rows []*storage.DailyMetricRow) error {
	if len(rows) == 0 {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if r == nil || r.AccountID == "" || r.Date == "" {
			return storage.ErrInvalidInput
		}
		key := rowKey(r)
		if _, exists := st.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, r := range rows {
		cp := *r
		st.data[rowKey(r)] = &cp
	}
	return nil
}

// GetByAccount retrieves all rows for an account, ordered by date ASC.
func (st *DailyMetricsStore) GetByAccount(_ context.Context, accountID string) ([]*storage.DailyMetricRow, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var out []*storage.DailyMetricRow
	for _, r := range st.data {
		if r.AccountID == accountID {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// GetByDateRange retrieves rows within [start, end], ordered by date ASC.
func (st *DailyMetricsStore) GetByDateRange(_ context.Context, accountID, start, end string) ([]*storage.DailyMetricRow, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var out []*storage.DailyMetricRow
	for _, r := range st.data {
		if r.AccountID == accountID && r.Date >= start && r.Date <= end {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
