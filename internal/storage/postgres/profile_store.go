package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// ProfileStore implements storage.ProfileStore using PostgreSQL.
type ProfileStore struct {
	pool *Pool
}

// NewProfileStore creates a new ProfileStore.
func NewProfileStore(pool *Pool) *ProfileStore {
	return &ProfileStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ProfileStore = (*ProfileStore)(nil)

// Insert adds a new profile. Returns ErrDuplicateKey if wallet exists.
func (s *ProfileStore) Insert(ctx context.Context, p *domain.UserProfile) error {
	if p == nil || p.Wallet == "" {
		return storage.ErrInvalidInput
	}

	history, err := json.Marshal(p.ScoreHistory)
	if err != nil {
		return fmt.Errorf("marshal score history: %w", err)
	}

	query := `
		INSERT INTO user_profiles (
			wallet, risk_threshold, watchlist, auto_swap, auto_freeze,
			active_sub, subscription_expiry, score_history, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = s.pool.Exec(ctx, query,
		p.Wallet,
		int16(p.Preferences.RiskThreshold),
		p.Preferences.Watchlist,
		p.Preferences.AutoSwap,
		p.Preferences.AutoFreeze,
		p.ActiveSub,
		p.SubscriptionExpiry,
		history,
		p.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByWallet retrieves a profile by wallet. Returns ErrNotFound if not exists.
func (s *ProfileStore) GetByWallet(ctx context.Context, wallet string) (*domain.UserProfile, error) {
	query := `
		SELECT wallet, risk_threshold, watchlist, auto_swap, auto_freeze,
		       active_sub, subscription_expiry, score_history, created_at
		FROM user_profiles
		WHERE wallet = $1
	`

	row := s.pool.QueryRow(ctx, query, wallet)
	p, err := scanProfile(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get profile by wallet: %w", err)
	}
	return p, nil
}

// Update replaces an existing profile. Returns ErrNotFound if not exists.
func (s *ProfileStore) Update(ctx context.Context, p *domain.UserProfile) error {
	if p == nil || p.Wallet == "" {
		return storage.ErrInvalidInput
	}

	history, err := json.Marshal(p.ScoreHistory)
	if err != nil {
		return fmt.Errorf("marshal score history: %w", err)
	}

	query := `
		UPDATE user_profiles
		SET risk_threshold = $2, watchlist = $3, auto_swap = $4, auto_freeze = $5,
		    active_sub = $6, subscription_expiry = $7, score_history = $8
		WHERE wallet = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		p.Wallet,
		int16(p.Preferences.RiskThreshold),
		p.Preferences.Watchlist,
		p.Preferences.AutoSwap,
		p.Preferences.AutoFreeze,
		p.ActiveSub,
		p.SubscriptionExpiry,
		history,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// scanProfile scans a single row into a UserProfile.
func scanProfile(row pgx.Row) (*domain.UserProfile, error) {
	var p domain.UserProfile
	var threshold int16
	var history []byte

	err := row.Scan(
		&p.Wallet,
		&threshold,
		&p.Preferences.Watchlist,
		&p.Preferences.AutoSwap,
		&p.Preferences.AutoFreeze,
		&p.ActiveSub,
		&p.SubscriptionExpiry,
		&history,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Preferences.RiskThreshold = uint8(threshold)
	if len(history) > 0 {
		if err := json.Unmarshal(history, &p.ScoreHistory); err != nil {
			return nil, fmt.Errorf("unmarshal score history: %w", err)
		}
	}
	return &p, nil
}
