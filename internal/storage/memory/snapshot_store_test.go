package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/storage"
)

func snapshot(account string, computedAt time.Time) *storage.Snapshot {
	return &storage.Snapshot{
		AccountID:  account,
		RangeStart: "2025-06-01",
		RangeEnd:   "2025-06-28",
		ComputedAt: computedAt,
		Insights:   domain.RestaurantInsights{TotalSpend: 100},
	}
}

func TestSnapshotStore_InsertAndGetLatest(t *testing.T) {
	ctx := context.Background()
	st := NewSnapshotStore()

	t1 := time.Date(2025, 6, 28, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	if err := st.Insert(ctx, snapshot("acct-1", t1)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := st.Insert(ctx, snapshot("acct-1", t2)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := st.GetLatest(ctx, "acct-1")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if !got.ComputedAt.Equal(t2) {
		t.Errorf("expected latest %v, got %v", t2, got.ComputedAt)
	}
}

func TestSnapshotStore_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	st := NewSnapshotStore()
	ts := time.Date(2025, 6, 28, 10, 0, 0, 0, time.UTC)

	if err := st.Insert(ctx, snapshot("acct-1", ts)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := st.Insert(ctx, snapshot("acct-1", ts)); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestSnapshotStore_NotFound(t *testing.T) {
	st := NewSnapshotStore()
	if _, err := st.GetLatest(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotStore_InvalidInput(t *testing.T) {
	st := NewSnapshotStore()
	err := st.Insert(context.Background(), &storage.Snapshot{AccountID: ""})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSnapshotStore_GetByRangeOrdered(t *testing.T) {
	ctx := context.Background()
	st := NewSnapshotStore()
	t1 := time.Date(2025, 6, 28, 10, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{t1.Add(2 * time.Hour), t1, t1.Add(time.Hour)} {
		if err := st.Insert(ctx, snapshot("acct-1", ts)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := st.GetByRange(ctx, "acct-1", "2025-06-01", "2025-06-28")
	if err != nil {
		t.Fatalf("get by range: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].ComputedAt.Before(got[i-1].ComputedAt) {
			t.Error("snapshots not ordered by computed_at ASC")
		}
	}
}
