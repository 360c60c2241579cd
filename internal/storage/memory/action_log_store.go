package memory

import (
	"context"
	"sort"
	"sync"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// ActionLogStore is an in-memory implementation of storage.ActionLogStore.
// Append-only: records are never updated or deleted.
type ActionLogStore struct {
	mu     sync.RWMutex
	data   []*domain.ActionLog
	nextID int64
}

// NewActionLogStore creates a new in-memory action log store.
func NewActionLogStore() *ActionLogStore {
	return &ActionLogStore{}
}

// Insert appends a new action log record. The store assigns ID.
func (s *ActionLogStore) Insert(_ context.Context, a *domain.ActionLog) error {
	if a == nil || a.Wallet == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	logCopy := *a
	logCopy.ID = s.nextID
	a.ID = s.nextID
	s.data = append(s.data, &logCopy)
	return nil
}

// GetByWallet retrieves all action logs for a wallet, ordered by timestamp ASC.
func (s *ActionLogStore) GetByWallet(_ context.Context, wallet string) ([]*domain.ActionLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.ActionLog
	for _, a := range s.data {
		if a.Wallet == wallet {
			logCopy := *a
			result = append(result, &logCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp != result[j].Timestamp {
			return result[i].Timestamp < result[j].Timestamp
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.ActionLogStore = (*ActionLogStore)(nil)
