// Package governance defines the vote-authorization policy used by the
// claim state machine. The tallying logic is decoupled from the policy so
// a token-weighted scheme can replace the single-authority placeholder.
package governance

import (
	"fmt"

	"iris-engine/internal/domain"
)

// Policy decides whether a voter may vote on claims.
type Policy interface {
	// IsAuthorized reports whether the voter may cast governance votes.
	IsAuthorized(voter string) bool
}

// AuthorityPolicy authorizes exactly the configured governance authority.
type AuthorityPolicy struct {
	authority string
}

// NewAuthorityPolicy creates a policy from a governance config.
// The config must satisfy domain.Governance.IsValid.
func NewAuthorityPolicy(g domain.Governance) (*AuthorityPolicy, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("invalid governance config: authority=%q quorum=%d", g.Authority, g.Quorum)
	}
	return &AuthorityPolicy{authority: g.Authority}, nil
}

// Compile-time interface check.
var _ Policy = (*AuthorityPolicy)(nil)

// IsAuthorized reports whether voter equals the configured authority.
func (p *AuthorityPolicy) IsAuthorized(voter string) bool {
	return voter != "" && voter == p.authority
}
