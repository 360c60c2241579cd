package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// ClaimStore implements storage.ClaimStore using PostgreSQL.
type ClaimStore struct {
	pool *Pool
}

// NewClaimStore creates a new ClaimStore.
func NewClaimStore(pool *Pool) *ClaimStore {
	return &ClaimStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ClaimStore = (*ClaimStore)(nil)

// Insert adds a new claim. Returns ErrDuplicateKey if claim_id exists.
func (s *ClaimStore) Insert(ctx context.Context, c *domain.Claim) error {
	if c == nil || c.ClaimID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO claims (
			claim_id, coverage_id, claimant, amount, claim_timestamp,
			status, proof, approval_votes, rejection_votes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.pool.Exec(ctx, query,
		c.ClaimID,
		c.CoverageID,
		c.Claimant,
		int64(c.Amount),
		c.Timestamp,
		string(c.Status),
		c.Proof,
		int64(c.ApprovalVotes),
		int64(c.RejectionVotes),
		c.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

// GetByID retrieves a claim by its ID. Returns ErrNotFound if not exists.
func (s *ClaimStore) GetByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	query := `
		SELECT claim_id, coverage_id, claimant, amount, claim_timestamp,
		       status, proof, approval_votes, rejection_votes, created_at
		FROM claims
		WHERE claim_id = $1
	`

	row := s.pool.QueryRow(ctx, query, claimID)
	c, err := scanClaim(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get claim by id: %w", err)
	}
	return c, nil
}

// GetByCoverageID retrieves all claims against a coverage, ordered by timestamp ASC.
func (s *ClaimStore) GetByCoverageID(ctx context.Context, coverageID string) ([]*domain.Claim, error) {
	query := `
		SELECT claim_id, coverage_id, claimant, amount, claim_timestamp,
		       status, proof, approval_votes, rejection_votes, created_at
		FROM claims
		WHERE coverage_id = $1
		ORDER BY claim_timestamp ASC, claim_id ASC
	`

	rows, err := s.pool.Query(ctx, query, coverageID)
	if err != nil {
		return nil, fmt.Errorf("get claims by coverage id: %w", err)
	}
	defer rows.Close()

	return scanClaims(rows)
}

// GetByClaimant retrieves all claims filed by a wallet, ordered by timestamp ASC.
func (s *ClaimStore) GetByClaimant(ctx context.Context, claimant string) ([]*domain.Claim, error) {
	query := `
		SELECT claim_id, coverage_id, claimant, amount, claim_timestamp,
		       status, proof, approval_votes, rejection_votes, created_at
		FROM claims
		WHERE claimant = $1
		ORDER BY claim_timestamp ASC, claim_id ASC
	`

	rows, err := s.pool.Query(ctx, query, claimant)
	if err != nil {
		return nil, fmt.Errorf("get claims by claimant: %w", err)
	}
	defer rows.Close()

	return scanClaims(rows)
}

// Update replaces an existing claim. Returns ErrNotFound if not exists.
func (s *ClaimStore) Update(ctx context.Context, c *domain.Claim) error {
	if c == nil || c.ClaimID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		UPDATE claims
		SET status = $2, approval_votes = $3, rejection_votes = $4
		WHERE claim_id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		c.ClaimID,
		string(c.Status),
		int64(c.ApprovalVotes),
		int64(c.RejectionVotes),
	)
	if err != nil {
		return fmt.Errorf("update claim: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// scanClaim scans a single row into a Claim.
func scanClaim(row pgx.Row) (*domain.Claim, error) {
	var c domain.Claim
	var amount, approvals, rejections int64
	var statusStr string

	err := row.Scan(
		&c.ClaimID,
		&c.CoverageID,
		&c.Claimant,
		&amount,
		&c.Timestamp,
		&statusStr,
		&c.Proof,
		&approvals,
		&rejections,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Amount = uint64(amount)
	c.Status = domain.ClaimStatus(statusStr)
	c.ApprovalVotes = uint64(approvals)
	c.RejectionVotes = uint64(rejections)
	return &c, nil
}

// scanClaims scans multiple rows into a slice of Claim.
func scanClaims(rows pgx.Rows) ([]*domain.Claim, error) {
	var claims []*domain.Claim

	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim row: %w", err)
		}
		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claim rows: %w", err)
	}

	return claims, nil
}
