package domain

// MaxProofSize is the upper bound on claim proof payloads in bytes.
const MaxProofSize = 1024

// ClaimStatus represents the lifecycle state of a claim.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimRejected ClaimStatus = "REJECTED"
)

// String returns the string representation of ClaimStatus.
func (s ClaimStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid value.
func (s ClaimStatus) IsValid() bool {
	return s == ClaimPending || s == ClaimApproved || s == ClaimRejected
}

// IsTerminal reports whether the claim can no longer transition.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimApproved || s == ClaimRejected
}

// Claim represents a claim against a coverage token.
// Corresponds to claims table in PostgreSQL.
type Claim struct {
	ClaimID        string      // PRIMARY KEY, deterministic hash
	CoverageID     string      // FK to coverage
	Claimant       string      // claiming wallet pubkey (base58)
	Amount         uint64      // requested payout (6-decimal units)
	Timestamp      int64       // initiation timestamp (ms)
	Status         ClaimStatus // PENDING | APPROVED | REJECTED
	Proof          []byte      // opaque proof payload, max MaxProofSize
	ApprovalVotes  uint64
	RejectionVotes uint64
	CreatedAt      int64 // record creation timestamp (ms)
}
