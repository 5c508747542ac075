package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/storage"
)

func testSnapshot(account string, computedAt time.Time) *storage.Snapshot {
	return &storage.Snapshot{
		AccountID:  account,
		RangeStart: "2025-06-01",
		RangeEnd:   "2025-06-28",
		ComputedAt: computedAt,
		Insights: domain.RestaurantInsights{
			TotalSpend:       324.58,
			TotalConversions: 16,
			AcquisitionTrend: domain.TrendIncreasing,
			ConversionsByType: domain.CategoryCounts{
				PhoneCall: 5, Website: 8, Directions: 3,
			},
		},
	}
}

func TestSnapshotStore_InsertAndGetLatest(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewSnapshotStore(pool)

	t1 := time.Date(2025, 6, 28, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	require.NoError(t, store.Insert(ctx, testSnapshot("acct-1", t1)))
	require.NoError(t, store.Insert(ctx, testSnapshot("acct-1", t2)))

	got, err := store.GetLatest(ctx, "acct-1")
	require.NoError(t, err)
	require.True(t, got.ComputedAt.Equal(t2))
	require.Equal(t, 324.58, got.Insights.TotalSpend)
	require.Equal(t, domain.TrendIncreasing, got.Insights.AcquisitionTrend)
	require.Equal(t, 8.0, got.Insights.ConversionsByType.Website)
}

func TestSnapshotStore_DuplicateKey(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewSnapshotStore(pool)
	ts := time.Date(2025, 6, 28, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(ctx, testSnapshot("acct-1", ts)))
	err := store.Insert(ctx, testSnapshot("acct-1", ts))
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestSnapshotStore_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := NewSnapshotStore(pool).GetLatest(context.Background(), "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSnapshotStore_InvalidInput(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	err := NewSnapshotStore(pool).Insert(context.Background(), &storage.Snapshot{AccountID: ""})
	require.ErrorIs(t, err, storage.ErrInvalidInput)
}

func TestSnapshotStore_GetByRangeOrdered(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewSnapshotStore(pool)
	t1 := time.Date(2025, 6, 28, 10, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{t1.Add(2 * time.Hour), t1, t1.Add(time.Hour)} {
		require.NoError(t, store.Insert(ctx, testSnapshot("acct-1", ts)))
	}

	got, err := store.GetByRange(ctx, "acct-1", "2025-06-01", "2025-06-28")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		require.False(t, got[i].ComputedAt.Before(got[i-1].ComputedAt),
			"snapshots not ordered by computed_at ASC")
	}
}
