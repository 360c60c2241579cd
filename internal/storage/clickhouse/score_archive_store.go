package clickhouse

import (
	"context"
	"fmt"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// ScoreArchiveStore implements storage.ScoreArchiveStore using ClickHouse.
// The archive is append-only and unbounded; duplicates are tolerated
// because MergeTree does not enforce uniqueness.
type ScoreArchiveStore struct {
	conn *Conn
}

// NewScoreArchiveStore creates a new ScoreArchiveStore.
func NewScoreArchiveStore(conn *Conn) *ScoreArchiveStore {
	return &ScoreArchiveStore{conn: conn}
}

// Compile-time interface check.
var _ storage.ScoreArchiveStore = (*ScoreArchiveStore)(nil)

// InsertBulk adds multiple archived scores in a single batch.
func (s *ScoreArchiveStore) InsertBulk(ctx context.Context, points []*domain.ScoreArchivePoint) error {
	if len(points) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO risk_scores (
			wallet, score, threshold, breached, timestamp_ms, ingested_at
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, p := range points {
		if p == nil || p.Wallet == "" {
			return storage.ErrInvalidInput
		}
		breached := uint8(0)
		if p.Breached {
			breached = 1
		}
		err = batch.Append(
			p.Wallet, p.Score, p.Threshold, breached,
			uint64(p.TimestampMs), uint64(p.IngestedAt),
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByWallet retrieves archived scores for a wallet, ordered by timestamp ASC.
func (s *ScoreArchiveStore) GetByWallet(ctx context.Context, wallet string) ([]*domain.ScoreArchivePoint, error) {
	query := `
		SELECT wallet, score, threshold, breached, timestamp_ms, ingested_at
		FROM risk_scores
		WHERE wallet = ?
		ORDER BY timestamp_ms ASC
	`

	rows, err := s.conn.Query(ctx, query, wallet)
	if err != nil {
		return nil, fmt.Errorf("query scores by wallet: %w", err)
	}
	defer rows.Close()

	var points []*domain.ScoreArchivePoint
	for rows.Next() {
		var p domain.ScoreArchivePoint
		var breached uint8
		var timestampMs, ingestedAt uint64

		err := rows.Scan(&p.Wallet, &p.Score, &p.Threshold, &breached, &timestampMs, &ingestedAt)
		if err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}

		p.Breached = breached != 0
		p.TimestampMs = int64(timestampMs)
		p.IngestedAt = int64(ingestedAt)
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score rows: %w", err)
	}

	return points, nil
}
