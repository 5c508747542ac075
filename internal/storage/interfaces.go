// Package storage defines persistence interfaces for computed insights.
//
// The assembler itself is stateless; these stores are caller-side
// plumbing used by the HTTP layer and the report CLI to keep a history
// of computed results and to archive the normalized daily series.
package storage

import (
	"context"
	"time"

	"ads-insights-lab/internal/domain"
)

// Snapshot is one persisted insights computation.
type Snapshot struct {
	AccountID  string
	RangeStart string // YYYY-MM-DD
	RangeEnd   string // YYYY-MM-DD
	ComputedAt time.Time
	Insights   domain.RestaurantInsights
}

// SnapshotStore provides access to persisted insights snapshots.
type SnapshotStore interface {
	// Insert adds a snapshot. Returns ErrDuplicateKey if a snapshot for
	// (account_id, range_start, range_end, computed_at) exists.
	Insert(ctx context.Context, s *Snapshot) error

	// GetLatest retrieves the most recent snapshot for an account.
	// Returns ErrNotFound if the account has none.
	GetLatest(ctx context.Context, accountID string) (*Snapshot, error)

	// GetByRange retrieves all snapshots for an account and range,
	// ordered by computed_at ASC.
	GetByRange(ctx context.Context, accountID, rangeStart, rangeEnd string) ([]*Snapshot, error)
}

// DailyMetricRow is one archived day of the normalized account series.
type DailyMetricRow struct {
	AccountID   string
	Date        string // YYYY-MM-DD
	Impressions int64
	Clicks      int64
	Spend       float64 // normalized currency, not micros
	Conversions float64
}

// DailyMetricsStore archives the normalized daily series.
type DailyMetricsStore interface {
	// InsertBulk adds multiple rows. Fails the entire batch on a
	// duplicate (account_id, date).
	InsertBulk(ctx context.Context, rows []*DailyMetricRow) error

	// GetByAccount retrieves all rows for an account, ordered by date ASC.
	GetByAccount(ctx context.Context, accountID string) ([]*DailyMetricRow, error)

	// GetByDateRange retrieves rows for an account within [start, end]
	// (inclusive), ordered by date ASC.
	GetByDateRange(ctx context.Context, accountID, start, end string) ([]*DailyMetricRow, error)
}
