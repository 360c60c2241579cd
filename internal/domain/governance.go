package domain

// Governance holds the claim-resolution voting configuration.
type Governance struct {
	Authority        string // authorized voter pubkey (base58)
	Quorum           uint64 // votes required to resolve a claim, must be > 0
	VotingDurationMs int64  // voting window duration (ms)
}

// IsValid checks the governance invariants.
func (g Governance) IsValid() bool {
	return g.Authority != "" && g.Quorum > 0
}
