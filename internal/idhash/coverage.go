package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeCoverageID computes a deterministic coverage_id using SHA256.
// Formula: SHA256(owner|token_mint|tier|issued_at)
// Returns hex-encoded hash (64 characters).
func ComputeCoverageID(
	owner string,
	tokenMint string,
	tier uint8,
	issuedAt int64,
) string {
	data := fmt.Sprintf("%s|%s|%d|%d",
		owner,
		tokenMint,
		tier,
		issuedAt,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
