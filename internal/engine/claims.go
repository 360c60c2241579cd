package engine

import (
	"context"
	"fmt"

	"iris-engine/internal/domain"
	"iris-engine/internal/events"
	"iris-engine/internal/idhash"
	"iris-engine/internal/observability"
)

// InitiateClaim opens a claim against a coverage token and escrows it.
//
// Only the coverage owner may file; the escrow transfer moves the
// owner's token, so a foreign claimant is rejected before any transfer.
// The escrow lock also prevents the coverage from backing a second
// concurrent claim (ErrCoverageLocked).
func (e *Engine) InitiateClaim(ctx context.Context, coverageID, claimant string, claimAmount uint64, proof []byte) (*domain.Claim, error) {
	coverage, err := e.coverage.GetByID(ctx, coverageID)
	if err != nil {
		return nil, fmt.Errorf("initiate claim on %s: %w", coverageID, err)
	}

	if claimant != coverage.Owner {
		return nil, ErrUnauthorizedClaimant
	}

	nowMs := e.now()
	if nowMs >= coverage.Expiry {
		return nil, ErrInsuranceExpired
	}
	if claimAmount > coverage.PayoutCap {
		return nil, ErrClaimExceedsCap
	}
	if len(proof) > domain.MaxProofSize {
		return nil, ErrProofTooLarge
	}
	if coverage.Escrowed {
		return nil, ErrCoverageLocked
	}

	// The claim sequence disambiguates repeat claims on the same
	// coverage, including re-claims within the same millisecond after a
	// rejection.
	prior, err := e.claims.GetByCoverageID(ctx, coverageID)
	if err != nil {
		return nil, fmt.Errorf("initiate claim on %s: load prior claims: %w", coverageID, err)
	}

	// Lock the coverage token in escrow. Quantity is 1: the token is
	// non-fungible.
	if err := e.transfer.Transfer(ctx, coverage.Owner, e.accounts.Escrow, 1); err != nil {
		return nil, fmt.Errorf("initiate claim on %s: escrow transfer: %w", coverageID, err)
	}

	claim := &domain.Claim{
		ClaimID:    idhash.ComputeClaimID(coverageID, claimant, len(prior), nowMs),
		CoverageID: coverageID,
		Claimant:   claimant,
		Amount:     claimAmount,
		Timestamp:  nowMs,
		Status:     domain.ClaimPending,
		Proof:      proof,
		CreatedAt:  nowMs,
	}
	if err := e.claims.Insert(ctx, claim); err != nil {
		return nil, fmt.Errorf("initiate claim on %s: persist claim: %w", coverageID, err)
	}

	coverage.Escrowed = true
	if err := e.coverage.Update(ctx, coverage); err != nil {
		return nil, fmt.Errorf("initiate claim on %s: persist coverage: %w", coverageID, err)
	}

	e.bus.Publish(events.ClaimInitiated{
		Wallet:     claimant,
		ClaimID:    claim.ClaimID,
		CoverageID: coverageID,
		Amount:     claimAmount,
		Timestamp:  nowMs,
	})
	observability.RecordClaimInitiated()

	return claim, nil
}

// VoteOnClaim casts a governance vote on a pending claim.
//
// Authorization is delegated to the governance policy. Both quorum
// thresholds are evaluated after every vote: approval quorum resolves to
// Approved and pays the claimant from the insurance pool; rejection
// quorum resolves to Rejected and returns the escrowed coverage to its
// owner with tier, expiry and payout cap unchanged. A claim that already
// reached a terminal status rejects further votes without mutating any
// counter.
func (e *Engine) VoteOnClaim(ctx context.Context, claimID, voter string, approve bool) (*domain.Claim, error) {
	claim, err := e.claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("vote on claim %s: %w", claimID, err)
	}

	if !e.policy.IsAuthorized(voter) {
		return nil, ErrUnauthorizedGovernance
	}
	if claim.Status.IsTerminal() {
		return nil, ErrClaimResolved
	}

	if approve {
		claim.ApprovalVotes++
	} else {
		claim.RejectionVotes++
	}

	nowMs := e.now()

	switch {
	case claim.ApprovalVotes >= e.gov.Quorum:
		claim.Status = domain.ClaimApproved
		if err := e.transfer.Transfer(ctx, e.accounts.Pool, claim.Claimant, claim.Amount); err != nil {
			return nil, fmt.Errorf("vote on claim %s: payout: %w", claimID, err)
		}
		observability.RecordClaimResolved(domain.ClaimApproved.String())

	case claim.RejectionVotes >= e.gov.Quorum:
		claim.Status = domain.ClaimRejected
		if err := e.returnEscrow(ctx, claim); err != nil {
			return nil, err
		}
		observability.RecordClaimResolved(domain.ClaimRejected.String())
	}

	if err := e.claims.Update(ctx, claim); err != nil {
		return nil, fmt.Errorf("vote on claim %s: persist claim: %w", claimID, err)
	}

	e.bus.Publish(events.ClaimVoted{
		ClaimID:   claimID,
		Voter:     voter,
		Approve:   approve,
		Timestamp: nowMs,
	})
	observability.RecordClaimVote(approve)

	if claim.Status.IsTerminal() {
		e.bus.Publish(events.ClaimResolved{
			ClaimID:    claimID,
			CoverageID: claim.CoverageID,
			Claimant:   claim.Claimant,
			Status:     claim.Status.String(),
			Timestamp:  nowMs,
		})
	}

	return claim, nil
}

// returnEscrow hands the escrowed coverage token back to its owner and
// clears the escrow flag. Coverage fields other than the flag are left
// untouched.
func (e *Engine) returnEscrow(ctx context.Context, claim *domain.Claim) error {
	coverage, err := e.coverage.GetByID(ctx, claim.CoverageID)
	if err != nil {
		return fmt.Errorf("vote on claim %s: load coverage: %w", claim.ClaimID, err)
	}

	if err := e.transfer.Transfer(ctx, e.accounts.Escrow, coverage.Owner, 1); err != nil {
		return fmt.Errorf("vote on claim %s: return escrow: %w", claim.ClaimID, err)
	}

	coverage.Escrowed = false
	if err := e.coverage.Update(ctx, coverage); err != nil {
		return fmt.Errorf("vote on claim %s: persist coverage: %w", claim.ClaimID, err)
	}
	return nil
}

// ClaimsByClaimant lists the claims filed by a wallet.
func (e *Engine) ClaimsByClaimant(ctx context.Context, claimant string) ([]*domain.Claim, error) {
	claims, err := e.claims.GetByClaimant(ctx, claimant)
	if err != nil {
		return nil, fmt.Errorf("claims by claimant %s: %w", claimant, err)
	}
	return claims, nil
}
