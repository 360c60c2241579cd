package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iris-engine/internal/domain"
)

func TestActionLogStore_InsertAssignsID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewActionLogStore(pool)
	ctx := context.Background()

	a := &domain.ActionLog{
		Wallet:    "WalletAct",
		Timestamp: 1700000100000,
		Action:    domain.ActionSwap,
		Asset:     "MintA",
		Score:     92,
		CreatedAt: 1700000100000,
	}

	err := store.Insert(ctx, a)
	require.NoError(t, err)
	assert.NotZero(t, a.ID)

	b := &domain.ActionLog{Wallet: "WalletAct", Timestamp: 1700000200000, Action: domain.ActionFreeze, Asset: "MintB"}
	require.NoError(t, store.Insert(ctx, b))
	assert.Greater(t, b.ID, a.ID)
}

func TestActionLogStore_GetByWallet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewActionLogStore(pool)
	ctx := context.Background()

	logs := []*domain.ActionLog{
		{Wallet: "alice", Timestamp: 3000, Action: domain.ActionSwap, Asset: "m3", Score: 90},
		{Wallet: "alice", Timestamp: 1000, Action: domain.ActionFreeze, Asset: "m1", Score: 85},
		{Wallet: "bob", Timestamp: 2000, Action: domain.ActionSwap, Asset: "m2", Score: 70},
	}
	for _, a := range logs {
		require.NoError(t, store.Insert(ctx, a))
	}

	result, err := store.GetByWallet(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, result, 2)

	// Ordered by timestamp ASC
	assert.Equal(t, "m1", result[0].Asset)
	assert.Equal(t, domain.ActionFreeze, result[0].Action)
	assert.Equal(t, "m3", result[1].Asset)
}

func TestActionLogStore_GetByWalletEmpty(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewActionLogStore(pool)
	ctx := context.Background()

	result, err := store.GetByWallet(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, result)
}
