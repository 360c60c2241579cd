package events

import (
	"context"
	"encoding/json"
	"log"

	"iris-engine/internal/domain"
	"iris-engine/internal/storage"
)

// Archiver subscribes to the bus and writes every event to the
// event archive. Archive failures are logged and do not propagate to
// the publishing operation.
type Archiver struct {
	store  storage.EventArchiveStore
	logger *log.Logger
}

// NewArchiver creates an Archiver and subscribes it to the bus.
func NewArchiver(bus *Bus, store storage.EventArchiveStore, logger *log.Logger) *Archiver {
	if logger == nil {
		logger = log.Default()
	}
	a := &Archiver{store: store, logger: logger}
	bus.Subscribe(a.archive)
	return a
}

func (a *Archiver) archive(e Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		a.logger.Printf("archive event %s: marshal: %v", e.EventKind(), err)
		return
	}

	rec := &domain.EventArchiveRecord{
		Kind:        e.EventKind(),
		Wallet:      e.EventWallet(),
		Payload:     string(payload),
		TimestampMs: e.EventTimestamp(),
	}

	if err := a.store.InsertBulk(context.Background(), []*domain.EventArchiveRecord{rec}); err != nil {
		a.logger.Printf("archive event %s: insert: %v", e.EventKind(), err)
	}
}
