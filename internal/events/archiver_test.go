package events

import (
	"context"
	"encoding/json"
	"testing"

	"iris-engine/internal/storage/memory"
)

func TestArchiver_WritesEvents(t *testing.T) {
	bus := NewBus()
	store := memory.NewEventArchiveStore()
	NewArchiver(bus, store, nil)

	bus.Publish(SubscriptionCreated{Wallet: "w1", PlanID: 2, Expiry: 5000, Timestamp: 1000})
	bus.Publish(CoverageMinted{Wallet: "w1", CoverageID: "c1", Tier: 1, Timestamp: 2000})

	records, err := store.GetByWallet(context.Background(), "w1")
	if err != nil {
		t.Fatalf("GetByWallet failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	if records[0].Kind != KindSubscriptionCreated {
		t.Errorf("Kind mismatch: got %s", records[0].Kind)
	}
	if records[0].TimestampMs != 1000 {
		t.Errorf("Timestamp mismatch: got %d", records[0].TimestampMs)
	}

	// Payload is the JSON-encoded event
	var decoded SubscriptionCreated
	if err := json.Unmarshal([]byte(records[0].Payload), &decoded); err != nil {
		t.Fatalf("Payload not valid JSON: %v", err)
	}
	if decoded.PlanID != 2 || decoded.Expiry != 5000 {
		t.Errorf("Payload mismatch: %+v", decoded)
	}
}

func TestArchiver_VoterAsWallet(t *testing.T) {
	bus := NewBus()
	store := memory.NewEventArchiveStore()
	NewArchiver(bus, store, nil)

	bus.Publish(ClaimVoted{ClaimID: "k1", Voter: "authority", Approve: true, Timestamp: 1000})

	records, err := store.GetByWallet(context.Background(), "authority")
	if err != nil {
		t.Fatalf("GetByWallet failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected vote archived under voter, got %d records", len(records))
	}
}
