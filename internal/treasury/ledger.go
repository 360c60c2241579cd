package treasury

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Ledger errors.
var (
	// ErrInsufficientBalance is returned when a transfer exceeds the
	// sender's balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Ledger is an in-memory AssetTransfer implementation used in tests and
// memory mode. Balances are tracked per account; minted tokens get
// sequential identifiers.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]uint64
	nextMint uint64

	// transfers records every successful transfer for assertions.
	transfers []TransferRecord
}

// TransferRecord captures one executed transfer.
type TransferRecord struct {
	From   string
	To     string
	Amount uint64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]uint64)}
}

// Compile-time interface check.
var _ AssetTransfer = (*Ledger)(nil)

// Credit seeds an account balance. Test helper.
func (l *Ledger) Credit(account string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

// Balance returns the current balance of an account.
func (l *Ledger) Balance(account string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account]
}

// Transfer moves amount from one account to another.
// Returns ErrInsufficientBalance when the sender cannot cover it.
func (l *Ledger) Transfer(_ context.Context, from, to string, amount uint64) error {
	if from == "" || to == "" {
		return fmt.Errorf("transfer: empty account")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[from] < amount {
		return fmt.Errorf("transfer %d from %s: %w", amount, from, ErrInsufficientBalance)
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	l.transfers = append(l.transfers, TransferRecord{From: from, To: to, Amount: amount})
	return nil
}

// Mint issues quantity units of a new token to the given account.
func (l *Ledger) Mint(_ context.Context, to string, quantity uint64) (string, error) {
	if to == "" {
		return "", fmt.Errorf("mint: empty account")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextMint++
	mint := fmt.Sprintf("mint-%d", l.nextMint)
	l.balances[to] += quantity
	return mint, nil
}

// Transfers returns a copy of all executed transfers in order.
func (l *Ledger) Transfers() []TransferRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]TransferRecord, len(l.transfers))
	copy(out, l.transfers)
	return out
}

// FailingTransfer is an AssetTransfer that always fails. Test helper for
// verifying that collaborator failures abort operations atomically.
type FailingTransfer struct {
	Err error
}

// Transfer always returns the configured error.
func (f FailingTransfer) Transfer(context.Context, string, string, uint64) error {
	return f.Err
}

// Mint always returns the configured error.
func (f FailingTransfer) Mint(context.Context, string, uint64) (string, error) {
	return "", f.Err
}
