package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// CoverageStore implements storage.CoverageStore using PostgreSQL.
type CoverageStore struct {
	pool *Pool
}

// NewCoverageStore creates a new CoverageStore.
func NewCoverageStore(pool *Pool) *CoverageStore {
	return &CoverageStore{pool: pool}
}

// Compile-time interface check.
var _ storage.CoverageStore = (*CoverageStore)(nil)

// Insert adds a new coverage record. Returns ErrDuplicateKey if coverage_id exists.
func (s *CoverageStore) Insert(ctx context.Context, c *domain.Coverage) error {
	if c == nil || c.CoverageID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO coverage (
			coverage_id, owner, tier, expiry, payout_cap, token_mint, escrowed, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		c.CoverageID,
		c.Owner,
		int16(c.Tier),
		c.Expiry,
		int64(c.PayoutCap),
		c.TokenMint,
		c.Escrowed,
		c.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert coverage: %w", err)
	}
	return nil
}

// GetByID retrieves a coverage record by its ID. Returns ErrNotFound if not exists.
func (s *CoverageStore) GetByID(ctx context.Context, coverageID string) (*domain.Coverage, error) {
	query := `
		SELECT coverage_id, owner, tier, expiry, payout_cap, token_mint, escrowed, created_at
		FROM coverage
		WHERE coverage_id = $1
	`

	row := s.pool.QueryRow(ctx, query, coverageID)
	c, err := scanCoverage(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get coverage by id: %w", err)
	}
	return c, nil
}

// GetByOwner retrieves all coverage records for an owner, ordered by created_at ASC.
func (s *CoverageStore) GetByOwner(ctx context.Context, owner string) ([]*domain.Coverage, error) {
	query := `
		SELECT coverage_id, owner, tier, expiry, payout_cap, token_mint, escrowed, created_at
		FROM coverage
		WHERE owner = $1
		ORDER BY created_at ASC, coverage_id ASC
	`

	rows, err := s.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("get coverage by owner: %w", err)
	}
	defer rows.Close()

	var coverages []*domain.Coverage
	for rows.Next() {
		c, err := scanCoverage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coverage row: %w", err)
		}
		coverages = append(coverages, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coverage rows: %w", err)
	}
	return coverages, nil
}

// Update replaces an existing coverage record. Returns ErrNotFound if not exists.
func (s *CoverageStore) Update(ctx context.Context, c *domain.Coverage) error {
	if c == nil || c.CoverageID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		UPDATE coverage
		SET owner = $2, tier = $3, expiry = $4, payout_cap = $5, token_mint = $6, escrowed = $7
		WHERE coverage_id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		c.CoverageID,
		c.Owner,
		int16(c.Tier),
		c.Expiry,
		int64(c.PayoutCap),
		c.TokenMint,
		c.Escrowed,
	)
	if err != nil {
		return fmt.Errorf("update coverage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// scanCoverage scans a single row into a Coverage.
func scanCoverage(row pgx.Row) (*domain.Coverage, error) {
	var c domain.Coverage
	var tier int16
	var payoutCap int64

	err := row.Scan(
		&c.CoverageID,
		&c.Owner,
		&tier,
		&c.Expiry,
		&payoutCap,
		&c.TokenMint,
		&c.Escrowed,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Tier = uint8(tier)
	c.PayoutCap = uint64(payoutCap)
	return &c, nil
}
