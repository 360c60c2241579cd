package memory

import (
	"context"
	"errors"
	"testing"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

func TestScoreArchiveStore_InsertBulkAndGet(t *testing.T) {
	store := NewScoreArchiveStore()
	ctx := context.Background()

	points := []*domain.ScoreArchivePoint{
		{Wallet: "alice", Score: 50, Threshold: 80, TimestampMs: 2000, IngestedAt: 2001},
		{Wallet: "alice", Score: 90, Threshold: 80, Breached: true, TimestampMs: 1000, IngestedAt: 1001},
		{Wallet: "bob", Score: 10, Threshold: 70, TimestampMs: 1500, IngestedAt: 1501},
	}

	if err := store.InsertBulk(ctx, points); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	result, err := store.GetByWallet(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByWallet failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(result))
	}

	// Ordered by timestamp ASC
	if result[0].Score != 90 || result[1].Score != 50 {
		t.Errorf("Wrong order: got %d, %d", result[0].Score, result[1].Score)
	}
	if !result[0].Breached {
		t.Error("Expected first point breached")
	}
}

func TestScoreArchiveStore_InvalidInput(t *testing.T) {
	store := NewScoreArchiveStore()
	ctx := context.Background()

	err := store.InsertBulk(ctx, []*domain.ScoreArchivePoint{nil})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil point, got %v", err)
	}

	err = store.InsertBulk(ctx, []*domain.ScoreArchivePoint{{Wallet: ""}})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty wallet, got %v", err)
	}
}

func TestEventArchiveStore_InsertBulkAndGet(t *testing.T) {
	store := NewEventArchiveStore()
	ctx := context.Background()

	records := []*domain.EventArchiveRecord{
		{Kind: "CLAIM_VOTED", Wallet: "alice", Payload: `{"claim_id":"k1"}`, TimestampMs: 2000},
		{Kind: "SUBSCRIPTION_CREATED", Wallet: "alice", Payload: `{"plan_id":1}`, TimestampMs: 1000},
		{Kind: "COVERAGE_MINTED", Wallet: "bob", Payload: `{}`, TimestampMs: 1500},
	}

	if err := store.InsertBulk(ctx, records); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	result, err := store.GetByWallet(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByWallet failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(result))
	}
	if result[0].Kind != "SUBSCRIPTION_CREATED" || result[1].Kind != "CLAIM_VOTED" {
		t.Errorf("Wrong order: got %s, %s", result[0].Kind, result[1].Kind)
	}
}

func TestEventArchiveStore_InvalidInput(t *testing.T) {
	store := NewEventArchiveStore()
	ctx := context.Background()

	err := store.InsertBulk(ctx, []*domain.EventArchiveRecord{{Kind: ""}})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty kind, got %v", err)
	}
}
