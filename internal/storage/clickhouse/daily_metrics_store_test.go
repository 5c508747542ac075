package clickhouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ads-insights-lab/internal/storage"
)

func TestDailyMetricsStore_InsertBulkAndQuery(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewDailyMetricsStore(conn)

	rows := []*storage.DailyMetricRow{
		{AccountID: "acct-1", Date: "2025-06-02", Impressions: 1200, Clicks: 80, Spend: 12.50, Conversions: 4},
		{AccountID: "acct-1", Date: "2025-06-01", Impressions: 900, Clicks: 55, Spend: 10.00, Conversions: 2},
		{AccountID: "acct-2", Date: "2025-06-01", Impressions: 40, Clicks: 3, Spend: 99.99, Conversions: 1},
	}
	require.NoError(t, store.InsertBulk(ctx, rows))

	got, err := store.GetByAccount(ctx, "acct-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "2025-06-01", got[0].Date)
	require.Equal(t, int64(900), got[0].Impressions)
	require.Equal(t, 10.00, got[0].Spend)

	ranged, err := store.GetByDateRange(ctx, "acct-1", "2025-06-02", "2025-06-30")
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	require.Equal(t, "2025-06-02", ranged[0].Date)
}

func TestDailyMetricsStore_IntraBatchDuplicate(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewDailyMetricsStore(conn)

	err := store.InsertBulk(context.Background(), []*storage.DailyMetricRow{
		{AccountID: "acct-1", Date: "2025-06-01"},
		{AccountID: "acct-1", Date: "2025-06-01"},
	})
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestDailyMetricsStore_ExistingDuplicate(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewDailyMetricsStore(conn)

	require.NoError(t, store.InsertBulk(ctx, []*storage.DailyMetricRow{
		{AccountID: "acct-1", Date: "2025-06-01"},
	}))

	err := store.InsertBulk(ctx, []*storage.DailyMetricRow{
		{AccountID: "acct-1", Date: "2025-06-02"},
		{AccountID: "acct-1", Date: "2025-06-01"},
	})
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestDailyMetricsStore_EmptyBatch(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, NewDailyMetricsStore(conn).InsertBulk(context.Background(), nil))
}

func TestDailyMetricsStore_InvalidInput(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	err := NewDailyMetricsStore(conn).InsertBulk(context.Background(), []*storage.DailyMetricRow{
		{AccountID: "", Date: "2025-06-01"},
	})
	require.ErrorIs(t, err, storage.ErrInvalidInput)
}
