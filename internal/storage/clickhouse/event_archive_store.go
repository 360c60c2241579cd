package clickhouse

import (
	"context"
	"fmt"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// EventArchiveStore implements storage.EventArchiveStore using ClickHouse.
type EventArchiveStore struct {
	conn *Conn
}

// NewEventArchiveStore creates a new EventArchiveStore.
func NewEventArchiveStore(conn *Conn) *EventArchiveStore {
	return &EventArchiveStore{conn: conn}
}

// Compile-time interface check.
var _ storage.EventArchiveStore = (*EventArchiveStore)(nil)

// InsertBulk adds multiple archived events in a single batch.
func (s *EventArchiveStore) InsertBulk(ctx context.Context, records []*domain.EventArchiveRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO engine_events (
			kind, wallet, payload, timestamp_ms
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range records {
		if r == nil || r.Kind == "" {
			return storage.ErrInvalidInput
		}
		err = batch.Append(r.Kind, r.Wallet, r.Payload, uint64(r.TimestampMs))
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByWallet retrieves archived events for a wallet, ordered by timestamp ASC.
func (s *EventArchiveStore) GetByWallet(ctx context.Context, wallet string) ([]*domain.EventArchiveRecord, error) {
	query := `
		SELECT kind, wallet, payload, timestamp_ms
		FROM engine_events
		WHERE wallet = ?
		ORDER BY timestamp_ms ASC
	`

	rows, err := s.conn.Query(ctx, query, wallet)
	if err != nil {
		return nil, fmt.Errorf("query events by wallet: %w", err)
	}
	defer rows.Close()

	var records []*domain.EventArchiveRecord
	for rows.Next() {
		var r domain.EventArchiveRecord
		var timestampMs uint64

		err := rows.Scan(&r.Kind, &r.Wallet, &r.Payload, &timestampMs)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}

		r.TimestampMs = int64(timestampMs)
		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return records, nil
}
