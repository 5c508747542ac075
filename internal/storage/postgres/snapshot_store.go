package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/storage"
)

// SnapshotStore implements storage.SnapshotStore using PostgreSQL.
// The insights aggregate is stored as JSONB alongside its key columns.
type SnapshotStore struct {
	pool *Pool
}

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(pool *Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool}
}

// Compile-time interface check.
var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// Insert adds a snapshot. Returns ErrDuplicateKey if the key exists.
func (s *SnapshotStore) Insert(ctx context.Context, snap *storage.Snapshot) error {
	if snap == nil || snap.AccountID == "" || snap.RangeStart == "" || snap.RangeEnd == "" {
		return storage.ErrInvalidInput
	}

	payload, err := json.Marshal(snap.Insights)
	if err != nil {
		return fmt.Errorf("marshal insights: %w", err)
	}

	query := `
		INSERT INTO insight_snapshots (
			account_id, range_start, range_end, computed_at, demo, insights
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = s.pool.Exec(ctx, query,
		snap.AccountID, snap.RangeStart, snap.RangeEnd, snap.ComputedAt,
		snap.Insights.Demo, payload,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// GetLatest retrieves the most recent snapshot for an account.
func (s *SnapshotStore) GetLatest(ctx context.Context, accountID string) (*storage.Snapshot, error) {
	query := `
		SELECT account_id, range_start, range_end, computed_at, insights
		FROM insight_snapshots
		WHERE account_id = $1
		ORDER BY computed_at DESC
		LIMIT 1
	`

	row := s.pool.QueryRow(ctx, query, accountID)
	snap, err := scanSnapshot(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}
	return snap, nil
}

// GetByRange retrieves snapshots for an account and range, ordered by
// computed_at ASC.
func (s *SnapshotStore) GetByRange(ctx context.Context, accountID, rangeStart, rangeEnd string) ([]*storage.Snapshot, error) {
	query := `
		SELECT account_id, range_start, range_end, computed_at, insights
		FROM insight_snapshots
		WHERE account_id = $1 AND range_start = $2 AND range_end = $3
		ORDER BY computed_at ASC
	`

	rows, err := s.pool.Query(ctx, query, accountID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []*storage.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return out, nil
}

// rowScanner covers pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*storage.Snapshot, error) {
	var (
		snap    storage.Snapshot
		payload []byte
	)
	if err := row.Scan(&snap.AccountID, &snap.RangeStart, &snap.RangeEnd, &snap.ComputedAt, &payload); err != nil {
		return nil, err
	}

	var insights domain.RestaurantInsights
	if err := json.Unmarshal(payload, &insights); err != nil {
		return nil, fmt.Errorf("unmarshal insights: %w", err)
	}
	snap.Insights = insights
	return &snap, nil
}
