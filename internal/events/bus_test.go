package events

import (
	"sync"
	"testing"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus()

	var got []Event
	bus.Subscribe(func(e Event) {
		got = append(got, e)
	})

	bus.Publish(SubscriptionCreated{Wallet: "w1", PlanID: 1, Timestamp: 1000})
	bus.Publish(RiskThresholdBreached{Wallet: "w1", Score: 90, Threshold: 80, Timestamp: 2000})

	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	if got[0].EventKind() != KindSubscriptionCreated {
		t.Errorf("First event kind: got %s", got[0].EventKind())
	}
	if got[1].EventKind() != KindRiskThresholdBreached {
		t.Errorf("Second event kind: got %s", got[1].EventKind())
	}
}

func TestBus_FanOut(t *testing.T) {
	bus := NewBus()

	counts := make([]int, 3)
	for i := range counts {
		i := i
		bus.Subscribe(func(Event) { counts[i]++ })
	}

	bus.Publish(ClaimVoted{ClaimID: "k1", Voter: "v", Timestamp: 1000})

	for i, n := range counts {
		if n != 1 {
			t.Errorf("Handler %d: got %d calls, want 1", i, n)
		}
	}
}

func TestBus_NilHandlerIgnored(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(nil)

	// Must not panic
	bus.Publish(ClaimVoted{ClaimID: "k1", Timestamp: 1000})
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()
	rec := NewRecorder(bus)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			bus.Publish(ProtectionTriggered{Wallet: "w", Timestamp: int64(n)})
		}(i)
	}
	wg.Wait()

	if len(rec.Events()) != 50 {
		t.Errorf("Expected 50 events, got %d", len(rec.Events()))
	}
}

func TestRecorder(t *testing.T) {
	bus := NewBus()
	rec := NewRecorder(bus)

	bus.Publish(ClaimVoted{ClaimID: "k1", Voter: "v", Approve: true, Timestamp: 1000})
	bus.Publish(ClaimVoted{ClaimID: "k2", Voter: "v", Approve: false, Timestamp: 2000})
	bus.Publish(ClaimResolved{ClaimID: "k1", Status: "APPROVED", Timestamp: 3000})

	if rec.CountKind(KindClaimVoted) != 2 {
		t.Errorf("CountKind: got %d, want 2", rec.CountKind(KindClaimVoted))
	}

	last := rec.LastOfKind(KindClaimVoted)
	if last == nil || last.(ClaimVoted).ClaimID != "k2" {
		t.Errorf("LastOfKind mismatch: %+v", last)
	}

	if rec.LastOfKind(KindCoverageMinted) != nil {
		t.Error("LastOfKind should be nil for unseen kind")
	}
}
