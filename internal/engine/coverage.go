package engine

import (
	"context"
	"fmt"

	"iris-engine/internal/domain"
	"iris-engine/internal/events"
	"iris-engine/internal/idhash"
	"iris-engine/internal/observability"
)

// MintCoverage issues a time-bounded, capped coverage token to the
// wallet. Requires an active, unexpired subscription. The token is
// minted via the asset-transfer service before the coverage record is
// persisted.
func (e *Engine) MintCoverage(ctx context.Context, wallet string, tier uint8, payoutCap uint64, durationMs int64) (*domain.Coverage, error) {
	profile, err := e.profiles.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("mint coverage %s: %w", wallet, err)
	}

	nowMs := e.now()
	if err := requireActiveSubscription(profile, nowMs); err != nil {
		return nil, err
	}

	tokenMint, err := e.transfer.Mint(ctx, wallet, 1)
	if err != nil {
		return nil, fmt.Errorf("mint coverage %s: token mint: %w", wallet, err)
	}

	coverage := &domain.Coverage{
		CoverageID: idhash.ComputeCoverageID(wallet, tokenMint, tier, nowMs),
		Owner:      wallet,
		Tier:       tier,
		Expiry:     nowMs + durationMs,
		PayoutCap:  payoutCap,
		TokenMint:  tokenMint,
		CreatedAt:  nowMs,
	}
	if err := e.coverage.Insert(ctx, coverage); err != nil {
		return nil, fmt.Errorf("mint coverage %s: persist: %w", wallet, err)
	}

	e.bus.Publish(events.CoverageMinted{
		Wallet:     wallet,
		CoverageID: coverage.CoverageID,
		TokenMint:  tokenMint,
		Tier:       tier,
		Expiry:     coverage.Expiry,
		PayoutCap:  payoutCap,
		Timestamp:  nowMs,
	})
	observability.RecordCoverageMinted(tier)

	return coverage, nil
}

// CoverageByOwner lists the coverage tokens held by a wallet.
func (e *Engine) CoverageByOwner(ctx context.Context, owner string) ([]*domain.Coverage, error) {
	coverages, err := e.coverage.GetByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("coverage by owner %s: %w", owner, err)
	}
	return coverages, nil
}
