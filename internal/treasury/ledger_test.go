package treasury

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestLedger_Transfer(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	ledger.Credit("alice", 100)

	if err := ledger.Transfer(ctx, "alice", "bob", 40); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	if ledger.Balance("alice") != 60 {
		t.Errorf("alice balance: got %d, want 60", ledger.Balance("alice"))
	}
	if ledger.Balance("bob") != 40 {
		t.Errorf("bob balance: got %d, want 40", ledger.Balance("bob"))
	}

	transfers := ledger.Transfers()
	if len(transfers) != 1 {
		t.Fatalf("Expected 1 transfer record, got %d", len(transfers))
	}
	if transfers[0] != (TransferRecord{From: "alice", To: "bob", Amount: 40}) {
		t.Errorf("Transfer record mismatch: %+v", transfers[0])
	}
}

func TestLedger_InsufficientBalance(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	ledger.Credit("alice", 10)

	err := ledger.Transfer(ctx, "alice", "bob", 11)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
	}

	// No state change on failed transfer
	if ledger.Balance("alice") != 10 || ledger.Balance("bob") != 0 {
		t.Error("Failed transfer must not move funds")
	}
	if len(ledger.Transfers()) != 0 {
		t.Error("Failed transfer must not be recorded")
	}
}

func TestLedger_EmptyAccounts(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	if err := ledger.Transfer(ctx, "", "bob", 1); err == nil {
		t.Error("Expected error for empty sender")
	}
	if err := ledger.Transfer(ctx, "alice", "", 1); err == nil {
		t.Error("Expected error for empty recipient")
	}
	if _, err := ledger.Mint(ctx, "", 1); err == nil {
		t.Error("Expected error for empty mint recipient")
	}
}

func TestLedger_Mint(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	mint1, err := ledger.Mint(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	mint2, err := ledger.Mint(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	if mint1 == mint2 {
		t.Error("Mint identifiers must be unique")
	}
	if ledger.Balance("alice") != 2 {
		t.Errorf("alice balance: got %d, want 2", ledger.Balance("alice"))
	}
}

func TestLedger_ConcurrentTransfers(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	ledger.Credit("hub", 1000)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ledger.Transfer(ctx, "hub", "spoke", 10)
		}()
	}
	wg.Wait()

	if ledger.Balance("hub") != 0 {
		t.Errorf("hub balance: got %d, want 0", ledger.Balance("hub"))
	}
	if ledger.Balance("spoke") != 1000 {
		t.Errorf("spoke balance: got %d, want 1000", ledger.Balance("spoke"))
	}
}
