package memory

import (
	"context"
	"sort"
	"sync"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// ScoreArchiveStore is an in-memory implementation of storage.ScoreArchiveStore.
type ScoreArchiveStore struct {
	mu   sync.RWMutex
	data []*domain.ScoreArchivePoint
}

// NewScoreArchiveStore creates a new in-memory score archive store.
func NewScoreArchiveStore() *ScoreArchiveStore {
	return &ScoreArchiveStore{}
}

// InsertBulk adds multiple archived scores.
func (s *ScoreArchiveStore) InsertBulk(_ context.Context, points []*domain.ScoreArchivePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range points {
		if p == nil || p.Wallet == "" {
			return storage.ErrInvalidInput
		}
		pointCopy := *p
		s.data = append(s.data, &pointCopy)
	}
	return nil
}

// GetByWallet retrieves archived scores for a wallet, ordered by timestamp ASC.
func (s *ScoreArchiveStore) GetByWallet(_ context.Context, wallet string) ([]*domain.ScoreArchivePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.ScoreArchivePoint
	for _, p := range s.data {
		if p.Wallet == wallet {
			pointCopy := *p
			result = append(result, &pointCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TimestampMs < result[j].TimestampMs
	})

	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.ScoreArchiveStore = (*ScoreArchiveStore)(nil)

// EventArchiveStore is an in-memory implementation of storage.EventArchiveStore.
type EventArchiveStore struct {
	mu   sync.RWMutex
	data []*domain.EventArchiveRecord
}

// NewEventArchiveStore creates a new in-memory event archive store.
func NewEventArchiveStore() *EventArchiveStore {
	return &EventArchiveStore{}
}

// InsertBulk adds multiple archived events.
func (s *EventArchiveStore) InsertBulk(_ context.Context, records []*domain.EventArchiveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if r == nil || r.Kind == "" {
			return storage.ErrInvalidInput
		}
		recordCopy := *r
		s.data = append(s.data, &recordCopy)
	}
	return nil
}

// GetByWallet retrieves archived events for a wallet, ordered by timestamp ASC.
func (s *EventArchiveStore) GetByWallet(_ context.Context, wallet string) ([]*domain.EventArchiveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.EventArchiveRecord
	for _, r := range s.data {
		if r.Wallet == wallet {
			recordCopy := *r
			result = append(result, &recordCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TimestampMs < result[j].TimestampMs
	})

	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.EventArchiveStore = (*EventArchiveStore)(nil)
