package domain

// Coverage represents a time-bounded, capped insurance claim-right token.
// Corresponds to coverage table in PostgreSQL.
type Coverage struct {
	CoverageID string // PRIMARY KEY, deterministic hash
	Owner      string // owning wallet pubkey (base58)
	Tier       uint8  // coverage tier
	Expiry     int64  // Unix timestamp in milliseconds
	PayoutCap  uint64 // maximum claimable amount (6-decimal units)
	TokenMint  string // asset-transfer token identifier (base58)
	Escrowed   bool   // true while locked by an open or approved claim
	CreatedAt  int64  // record creation timestamp (ms)
}
