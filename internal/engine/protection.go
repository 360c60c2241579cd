package engine

import (
	"context"
	"fmt"

	"iris-engine/internal/domain"
	"iris-engine/internal/events"
	"iris-engine/internal/observability"
)

// TriggerProtection dispatches a protective action for the wallet.
//
// Requires an active, unexpired subscription and at least one ingested
// score. Swap and Freeze are delegated to external venues and only
// emitted here; declared-but-unimplemented kinds (Alert, Claim) are
// rejected with ErrInvalidAction. Every dispatch appends an action log
// record capturing the latest known score.
func (e *Engine) TriggerProtection(ctx context.Context, wallet string, action domain.ProtectionAction, asset string, amount uint64) error {
	profile, err := e.profiles.GetByWallet(ctx, wallet)
	if err != nil {
		return fmt.Errorf("trigger protection %s: %w", wallet, err)
	}

	nowMs := e.now()
	if err := requireActiveSubscription(profile, nowMs); err != nil {
		return err
	}

	latest, ok := profile.LatestScore()
	if !ok {
		return ErrEmptyScoreHistory
	}

	if !action.Dispatchable() {
		return ErrInvalidAction
	}

	entry := &domain.ActionLog{
		Wallet:    wallet,
		Timestamp: nowMs,
		Action:    action,
		Asset:     asset,
		Score:     latest.Value,
	}
	if err := e.actionLogs.Insert(ctx, entry); err != nil {
		return fmt.Errorf("trigger protection %s: persist action log: %w", wallet, err)
	}

	e.bus.Publish(events.ProtectionTriggered{
		Wallet:    wallet,
		Action:    action.String(),
		Asset:     asset,
		Amount:    amount,
		Timestamp: nowMs,
	})
	observability.RecordProtectionTriggered(action.String())

	return nil
}

// ActionHistory returns the append-only action log for a wallet.
func (e *Engine) ActionHistory(ctx context.Context, wallet string) ([]*domain.ActionLog, error) {
	logs, err := e.actionLogs.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("action history %s: %w", wallet, err)
	}
	return logs, nil
}
