package memory

import (
	"context"
	"sort"
	"sync"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// CoverageStore is an in-memory implementation of storage.CoverageStore.
type CoverageStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Coverage // keyed by coverage_id
}

// NewCoverageStore creates a new in-memory coverage store.
func NewCoverageStore() *CoverageStore {
	return &CoverageStore{
		data: make(map[string]*domain.Coverage),
	}
}

// Insert adds a new coverage record. Returns ErrDuplicateKey if coverage_id exists.
func (s *CoverageStore) Insert(_ context.Context, c *domain.Coverage) error {
	if c == nil || c.CoverageID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.CoverageID]; exists {
		return storage.ErrDuplicateKey
	}

	coverageCopy := *c
	s.data[c.CoverageID] = &coverageCopy
	return nil
}

// GetByID retrieves a coverage record by its ID. Returns ErrNotFound if not exists.
func (s *CoverageStore) GetByID(_ context.Context, coverageID string) (*domain.Coverage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.data[coverageID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	coverageCopy := *c
	return &coverageCopy, nil
}

// GetByOwner retrieves all coverage records for an owner, ordered by created_at ASC.
func (s *CoverageStore) GetByOwner(_ context.Context, owner string) ([]*domain.Coverage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Coverage
	for _, c := range s.data {
		if c.Owner == owner {
			coverageCopy := *c
			result = append(result, &coverageCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return result[i].CoverageID < result[j].CoverageID
	})

	return result, nil
}

// Update replaces an existing coverage record. Returns ErrNotFound if not exists.
func (s *CoverageStore) Update(_ context.Context, c *domain.Coverage) error {
	if c == nil || c.CoverageID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.CoverageID]; !exists {
		return storage.ErrNotFound
	}

	coverageCopy := *c
	s.data[c.CoverageID] = &coverageCopy
	return nil
}

// Verify interface compliance at compile time.
var _ storage.CoverageStore = (*CoverageStore)(nil)
