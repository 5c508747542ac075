package memory

import (
	"context"
	"errors"
	"testing"

	"ads-insights-lab/internal/storage"
)

func TestDailyMetricsStore_InsertBulkAndQuery(t *testing.T) {
	ctx := context.Background()
	st := NewDailyMetricsStore()

	rows := []*storage.DailyMetricRow{
		{AccountID: "acct-1", Date: "2025-06-02", Spend: 12.50, Conversions: 4},
		{AccountID: "acct-1", Date: "2025-06-01", Spend: 10.00, Conversions: 2},
		{AccountID: "acct-2", Date: "2025-06-01", Spend: 99.99, Conversions: 1},
	}
	if err := st.InsertBulk(ctx, rows); err != nil {
		t.Fatalf("insert bulk: %v", err)
	}

	got, err := st.GetByAccount(ctx, "acct-1")
	if err != nil {
		t.Fatalf("get by account: %v", err)
	}
	if len(got) != 2 || got[0].Date != "2025-06-01" {
		t.Errorf("expected 2 rows ordered by date, got %+v", got)
	}

	ranged, err := st.GetByDateRange(ctx, "acct-1", "2025-06-02", "2025-06-30")
	if err != nil {
		t.Fatalf("get by range: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Date != "2025-06-02" {
		t.Errorf("unexpected range result: %+v", ranged)
	}
}

func TestDailyMetricsStore_IntraBatchDuplicate(t *testing.T) {
	st := NewDailyMetricsStore()

	rows := []*storage.DailyMetricRow{
		{AccountID: "acct-1", Date: "2025-06-01"},
		{AccountID: "acct-1", Date: "2025-06-01"},
	}
	err := st.InsertBulk(context.Background(), rows)
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}

	// Failed batch must not have partially applied.
	got, _ := st.GetByAccount(context.Background(), "acct-1")
	if len(got) != 0 {
		t.Errorf("failed batch leaked %d rows", len(got))
	}
}

func TestDailyMetricsStore_ExistingDuplicate(t *testing.T) {
	ctx := context.Background()
	st := NewDailyMetricsStore()

	first := []*storage.DailyMetricRow{{AccountID: "acct-1", Date: "2025-06-01"}}
	if err := st.InsertBulk(ctx, first); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := st.InsertBulk(ctx, []*storage.DailyMetricRow{
		{AccountID: "acct-1", Date: "2025-06-02"},
		{AccountID: "acct-1", Date: "2025-06-01"},
	})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}
