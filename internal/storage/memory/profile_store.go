package memory

import (
	"context"
	"sync"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// ProfileStore is an in-memory implementation of storage.ProfileStore.
type ProfileStore struct {
	mu   sync.RWMutex
	data map[string]*domain.UserProfile // keyed by wallet
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		data: make(map[string]*domain.UserProfile),
	}
}

// Insert adds a new profile. Returns ErrDuplicateKey if wallet exists.
func (s *ProfileStore) Insert(_ context.Context, p *domain.UserProfile) error {
	if p == nil || p.Wallet == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.Wallet]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[p.Wallet] = copyProfile(p)
	return nil
}

// GetByWallet retrieves a profile by wallet. Returns ErrNotFound if not exists.
func (s *ProfileStore) GetByWallet(_ context.Context, wallet string) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.data[wallet]
	if !exists {
		return nil, storage.ErrNotFound
	}

	return copyProfile(p), nil
}

// Update replaces an existing profile. Returns ErrNotFound if not exists.
func (s *ProfileStore) Update(_ context.Context, p *domain.UserProfile) error {
	if p == nil || p.Wallet == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.Wallet]; !exists {
		return storage.ErrNotFound
	}

	s.data[p.Wallet] = copyProfile(p)
	return nil
}

// copyProfile deep-copies a profile so callers cannot mutate stored state.
func copyProfile(p *domain.UserProfile) *domain.UserProfile {
	profileCopy := *p
	profileCopy.ScoreHistory = append([]domain.Score(nil), p.ScoreHistory...)
	profileCopy.Preferences.Watchlist = append([]string(nil), p.Preferences.Watchlist...)
	return &profileCopy
}

// Verify interface compliance at compile time.
var _ storage.ProfileStore = (*ProfileStore)(nil)
