package engine

import (
	"context"
	"fmt"

	"iris-engine/internal/domain"
	"iris-engine/internal/events"
	"iris-engine/internal/observability"
)

// CreateProfile registers a wallet with its risk preferences. Profiles
// start unsubscribed with an empty score history.
func (e *Engine) CreateProfile(ctx context.Context, wallet string, prefs domain.RiskParams) (*domain.UserProfile, error) {
	if len(prefs.Watchlist) > domain.WatchlistCap {
		return nil, ErrWatchlistTooLarge
	}

	profile := &domain.UserProfile{
		Wallet:      wallet,
		Preferences: prefs,
		CreatedAt:   e.now(),
	}
	if err := e.profiles.Insert(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile %s: %w", wallet, err)
	}
	return profile, nil
}

// Profile returns the stored profile for a wallet.
func (e *Engine) Profile(ctx context.Context, wallet string) (*domain.UserProfile, error) {
	profile, err := e.profiles.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", wallet, err)
	}
	return profile, nil
}

// Subscribe activates a protection plan for the wallet.
//
// The plan table fixes price and nominal duration per plan ID; only the
// price floor is enforced, the effective duration is caller-supplied.
// The payment is transferred to the treasury before the profile is
// persisted, so a failed transfer leaves the subscription untouched.
func (e *Engine) Subscribe(ctx context.Context, wallet string, planID uint8, durationMs int64, paymentAmount uint64) error {
	profile, err := e.profiles.GetByWallet(ctx, wallet)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", wallet, err)
	}

	plan, ok := domain.PlanByID(planID)
	if !ok {
		return ErrInvalidPlan
	}
	if paymentAmount < plan.Price {
		return ErrInsufficientPayment
	}

	nowMs := e.now()

	if err := e.transfer.Transfer(ctx, wallet, e.accounts.Treasury, paymentAmount); err != nil {
		return fmt.Errorf("subscribe %s: payment transfer: %w", wallet, err)
	}

	profile.ActiveSub = true
	profile.SubscriptionExpiry = nowMs + durationMs
	if err := e.profiles.Update(ctx, profile); err != nil {
		return fmt.Errorf("subscribe %s: persist profile: %w", wallet, err)
	}

	e.bus.Publish(events.SubscriptionCreated{
		Wallet:    wallet,
		PlanID:    planID,
		Expiry:    profile.SubscriptionExpiry,
		Timestamp: nowMs,
	})
	observability.RecordSubscription(planID)

	return nil
}
