package clickhouse

import (
	"context"
	"fmt"

	"ads-insights-lab/internal/storage"
)

// DailyMetricsStore implements storage.DailyMetricsStore using ClickHouse.
type DailyMetricsStore struct {
	conn *Conn
}

// NewDailyMetricsStore creates a new DailyMetricsStore.
func NewDailyMetricsStore(conn *Conn) *DailyMetricsStore {
	return &DailyMetricsStore{conn: conn}
}

// Compile-time interface check.
var _ storage.DailyMetricsStore = (*DailyMetricsStore)(nil)

// InsertBulk adds multiple rows. Fails entire batch on duplicate (account_id, date).
// MergeTree doesn't enforce uniqueness, so duplicates are checked explicitly
// before the batch is sent.
func (s *DailyMetricsStore) InsertBulk(ctx context.Context, rows []*storage.DailyMetricRow) error {
	if len(rows) == 0 {
		return nil
	}

	// Check for intra-batch duplicates
	type key struct {
		accountID string
		date      string
	}
	seen := make(map[key]struct{})
	for _, r := range rows {
		if r == nil || r.AccountID == "" || r.Date == "" {
			return storage.ErrInvalidInput
		}
		k := key{r.AccountID, r.Date}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	// Check for duplicates against existing DB rows
	for _, r := range rows {
		exists, err := s.exists(ctx, r.AccountID, r.Date)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO daily_metrics (
			account_id, date, impressions, clicks, spend, conversions
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range rows {
		err = batch.Append(
			r.AccountID, r.Date, uint64(r.Impressions), uint64(r.Clicks),
			r.Spend, r.Conversions,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByAccount retrieves all rows for an account, ordered by date ASC.
func (s *DailyMetricsStore) GetByAccount(ctx context.Context, accountID string) ([]*storage.DailyMetricRow, error) {
	query := `
		SELECT account_id, date, impressions, clicks, spend, conversions
		FROM daily_metrics
		WHERE account_id = ?
		ORDER BY date ASC
	`

	rows, err := s.conn.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("query by account id: %w", err)
	}
	defer rows.Close()

	return scanDailyMetrics(rows)
}

// GetByDateRange retrieves rows for an account within [start, end] (inclusive).
func (s *DailyMetricsStore) GetByDateRange(ctx context.Context, accountID, start, end string) ([]*storage.DailyMetricRow, error) {
	query := `
		SELECT account_id, date, impressions, clicks, spend, conversions
		FROM daily_metrics
		WHERE account_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC
	`

	rows, err := s.conn.Query(ctx, query, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query by date range: %w", err)
	}
	defer rows.Close()

	return scanDailyMetrics(rows)
}

// exists checks if a row with the given key exists.
func (s *DailyMetricsStore) exists(ctx context.Context, accountID, date string) (bool, error) {
	query := `
		SELECT count(*) FROM daily_metrics
		WHERE account_id = ? AND date = ?
	`

	var count uint64
	err := s.conn.QueryRow(ctx, query, accountID, date).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Rows interface for scanning
type chRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanDailyMetrics scans multiple rows.
func scanDailyMetrics(rows chRows) ([]*storage.DailyMetricRow, error) {
	var out []*storage.DailyMetricRow

	for rows.Next() {
		var r storage.DailyMetricRow
		var impressions, clicks uint64

		err := rows.Scan(
			&r.AccountID, &r.Date, &impressions, &clicks,
			&r.Spend, &r.Conversions,
		)
		if err != nil {
			return nil, fmt.Errorf("scan daily metrics row: %w", err)
		}

		r.Impressions = int64(impressions)
		r.Clicks = int64(clicks)
		out = append(out, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily metrics rows: %w", err)
	}

	return out, nil
}
