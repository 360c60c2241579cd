package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeClaimID computes a deterministic claim_id using SHA256.
// Formula: SHA256(coverage_id|claimant|sequence|initiated_at)
// The sequence is the count of prior claims on the coverage; it keeps
// repeat claims distinct even within the same millisecond.
// Returns hex-encoded hash (64 characters).
func ComputeClaimID(
	coverageID string,
	claimant string,
	sequence int,
	initiatedAt int64,
) string {
	data := fmt.Sprintf("%s|%s|%d|%d",
		coverageID,
		claimant,
		sequence,
		initiatedAt,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
