package clickhouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iris-engine/internal/domain"
)

func TestEventArchiveStore_InsertBulkAndGetByWallet(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewEventArchiveStore(conn)
	ctx := context.Background()

	records := []*domain.EventArchiveRecord{
		{Kind: "CLAIM_VOTED", Wallet: "WalletA", Payload: `{"claim_id":"k1","approve":true}`, TimestampMs: 1700000060000},
		{Kind: "SUBSCRIPTION_CREATED", Wallet: "WalletA", Payload: `{"plan_id":1}`, TimestampMs: 1700000000000},
		{Kind: "COVERAGE_MINTED", Wallet: "WalletB", Payload: `{}`, TimestampMs: 1700000030000},
	}

	err := store.InsertBulk(ctx, records)
	require.NoError(t, err)

	result, err := store.GetByWallet(ctx, "WalletA")
	require.NoError(t, err)
	require.Len(t, result, 2)

	// Ordered by timestamp ASC
	assert.Equal(t, "SUBSCRIPTION_CREATED", result[0].Kind)
	assert.Equal(t, `{"plan_id":1}`, result[0].Payload)
	assert.Equal(t, "CLAIM_VOTED", result[1].Kind)
}

func TestEventArchiveStore_EmptyBatch(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewEventArchiveStore(conn)
	ctx := context.Background()

	err := store.InsertBulk(ctx, nil)
	require.NoError(t, err)
}
