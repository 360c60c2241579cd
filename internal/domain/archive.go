package domain

// ScoreArchivePoint is one ingested risk score in the analytics archive.
// Corresponds to risk_scores table in ClickHouse. The archive is
// unbounded; the in-profile history keeps only the last ScoreHistoryCap.
type ScoreArchivePoint struct {
	Wallet      string // wallet pubkey (base58)
	Score       uint8  // risk score 0-255
	Threshold   uint8  // profile threshold at ingestion time
	Breached    bool   // score >= threshold
	TimestampMs int64  // oracle-supplied timestamp (ms)
	IngestedAt  int64  // server ingestion timestamp (ms)
}

// EventArchiveRecord is one emitted engine event in the analytics archive.
// Corresponds to engine_events table in ClickHouse.
type EventArchiveRecord struct {
	Kind        string // event kind (e.g. "CLAIM_VOTED")
	Wallet      string // primary wallet of the event
	Payload     string // JSON-encoded event body
	TimestampMs int64  // event timestamp (ms)
}
