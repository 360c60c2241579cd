package storage

import (
	"context"

	"iris-engine/internal/domain"
)

// ProfileStore provides access to user_profiles storage.
type ProfileStore interface {
	// Insert adds a new profile. Returns ErrDuplicateKey if wallet exists.
	Insert(ctx context.Context, p *domain.UserProfile) error

	// GetByWallet retrieves a profile by wallet. Returns ErrNotFound if not exists.
	GetByWallet(ctx context.Context, wallet string) (*domain.UserProfile, error)

	// Update replaces an existing profile. Returns ErrNotFound if not exists.
	Update(ctx context.Context, p *domain.UserProfile) error
}

// CoverageStore provides access to coverage storage.
type CoverageStore interface {
	// Insert adds a new coverage record. Returns ErrDuplicateKey if coverage_id exists.
	Insert(ctx context.Context, c *domain.Coverage) error

	// GetByID retrieves a coverage record by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, coverageID string) (*domain.Coverage, error)

	// GetByOwner retrieves all coverage records for an owner, ordered by created_at ASC.
	GetByOwner(ctx context.Context, owner string) ([]*domain.Coverage, error)

	// Update replaces an existing coverage record. Returns ErrNotFound if not exists.
	Update(ctx context.Context, c *domain.Coverage) error
}

// ClaimStore provides access to claims storage.
type ClaimStore interface {
	// Insert adds a new claim. Returns ErrDuplicateKey if claim_id exists.
	Insert(ctx context.Context, c *domain.Claim) error

	// GetByID retrieves a claim by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, claimID string) (*domain.Claim, error)

	// GetByCoverageID retrieves all claims against a coverage, ordered by timestamp ASC.
	GetByCoverageID(ctx context.Context, coverageID string) ([]*domain.Claim, error)

	// GetByClaimant retrieves all claims filed by a wallet, ordered by timestamp ASC.
	GetByClaimant(ctx context.Context, claimant string) ([]*domain.Claim, error)

	// Update replaces an existing claim. Returns ErrNotFound if not exists.
	Update(ctx context.Context, c *domain.Claim) error
}

// ActionLogStore provides access to action_logs storage. Append-only.
type ActionLogStore interface {
	// Insert appends a new action log record. The store assigns ID.
	Insert(ctx context.Context, a *domain.ActionLog) error

	// GetByWallet retrieves all action logs for a wallet, ordered by timestamp ASC.
	GetByWallet(ctx context.Context, wallet string) ([]*domain.ActionLog, error)
}

// ScoreArchiveStore provides access to the unbounded risk_scores archive.
// Unlike the bounded in-profile history, the archive retains every
// ingested score for analytics.
type ScoreArchiveStore interface {
	// InsertBulk adds multiple archived scores.
	InsertBulk(ctx context.Context, points []*domain.ScoreArchivePoint) error

	// GetByWallet retrieves archived scores for a wallet, ordered by timestamp ASC.
	GetByWallet(ctx context.Context, wallet string) ([]*domain.ScoreArchivePoint, error)
}

// EventArchiveStore provides access to the emitted-event archive.
type EventArchiveStore interface {
	// InsertBulk adds multiple archived events.
	InsertBulk(ctx context.Context, records []*domain.EventArchiveRecord) error

	// GetByWallet retrieves archived events for a wallet, ordered by timestamp ASC.
	GetByWallet(ctx context.Context, wallet string) ([]*domain.EventArchiveRecord, error)
}
