package memory

import (
	"context"
	"sort"
	"sync"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// ClaimStore is an in-memory implementation of storage.ClaimStore.
type ClaimStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Claim // keyed by claim_id
}

// NewClaimStore creates a new in-memory claim store.
func NewClaimStore() *ClaimStore {
	return &ClaimStore{
		data: make(map[string]*domain.Claim),
	}
}

// Insert adds a new claim. Returns ErrDuplicateKey if claim_id exists.
func (s *ClaimStore) Insert(_ context.Context, c *domain.Claim) error {
	if c == nil || c.ClaimID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.ClaimID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[c.ClaimID] = copyClaim(c)
	return nil
}

// GetByID retrieves a claim by its ID. Returns ErrNotFound if not exists.
func (s *ClaimStore) GetByID(_ context.Context, claimID string) (*domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.data[claimID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	return copyClaim(c), nil
}

// GetByCoverageID retrieves all claims against a coverage, ordered by timestamp ASC.
func (s *ClaimStore) GetByCoverageID(_ context.Context, coverageID string) ([]*domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Claim
	for _, c := range s.data {
		if c.CoverageID == coverageID {
			result = append(result, copyClaim(c))
		}
	}

	sortClaims(result)
	return result, nil
}

// GetByClaimant retrieves all claims filed by a wallet, ordered by timestamp ASC.
func (s *ClaimStore) GetByClaimant(_ context.Context, claimant string) ([]*domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Claim
	for _, c := range s.data {
		if c.Claimant == claimant {
			result = append(result, copyClaim(c))
		}
	}

	sortClaims(result)
	return result, nil
}

// Update replaces an existing claim. Returns ErrNotFound if not exists.
func (s *ClaimStore) Update(_ context.Context, c *domain.Claim) error {
	if c == nil || c.ClaimID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.ClaimID]; !exists {
		return storage.ErrNotFound
	}

	s.data[c.ClaimID] = copyClaim(c)
	return nil
}

// copyClaim deep-copies a claim so callers cannot mutate stored state.
func copyClaim(c *domain.Claim) *domain.Claim {
	claimCopy := *c
	claimCopy.Proof = append([]byte(nil), c.Proof...)
	return &claimCopy
}

func sortClaims(claims []*domain.Claim) {
	sort.Slice(claims, func(i, j int) bool {
		if claims[i].Timestamp != claims[j].Timestamp {
			return claims[i].Timestamp < claims[j].Timestamp
		}
		return claims[i].ClaimID < claims[j].ClaimID
	})
}

// Verify interface compliance at compile time.
var _ storage.ClaimStore = (*ClaimStore)(nil)
