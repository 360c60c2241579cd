package postgres

import (
	"context"
	"fmt"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// ActionLogStore implements storage.ActionLogStore using PostgreSQL.
// Append-only: records are never updated or deleted.
type ActionLogStore struct {
	pool *Pool
}

// NewActionLogStore creates a new ActionLogStore.
func NewActionLogStore(pool *Pool) *ActionLogStore {
	return &ActionLogStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ActionLogStore = (*ActionLogStore)(nil)

// Insert appends a new action log record. The database assigns ID.
func (s *ActionLogStore) Insert(ctx context.Context, a *domain.ActionLog) error {
	if a == nil || a.Wallet == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO action_logs (
			wallet, action_timestamp, action, asset, score, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.pool.QueryRow(ctx, query,
		a.Wallet,
		a.Timestamp,
		string(a.Action),
		a.Asset,
		int16(a.Score),
		a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert action log: %w", err)
	}
	return nil
}

// GetByWallet retrieves all action logs for a wallet, ordered by timestamp ASC.
func (s *ActionLogStore) GetByWallet(ctx context.Context, wallet string) ([]*domain.ActionLog, error) {
	query := `
		SELECT id, wallet, action_timestamp, action, asset, score, created_at
		FROM action_logs
		WHERE wallet = $1
		ORDER BY action_timestamp ASC, id ASC
	`

	rows, err := s.pool.Query(ctx, query, wallet)
	if err != nil {
		return nil, fmt.Errorf("get action logs by wallet: %w", err)
	}
	defer rows.Close()

	var logs []*domain.ActionLog
	for rows.Next() {
		var a domain.ActionLog
		var actionStr string
		var score int16

		err := rows.Scan(
			&a.ID,
			&a.Wallet,
			&a.Timestamp,
			&actionStr,
			&a.Asset,
			&score,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan action log row: %w", err)
		}

		a.Action = domain.ProtectionAction(actionStr)
		a.Score = uint8(score)
		logs = append(logs, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate action log rows: %w", err)
	}

	return logs, nil
}
