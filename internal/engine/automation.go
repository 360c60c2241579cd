package engine

import (
	"context"
	"log"

	"iris-engine/internal/domain"
	"iris-engine/internal/events"
)

// Automator dispatches protection actions for profiles that opted into
// auto-swap or auto-freeze. It consumes RiskThresholdBreached events and
// explicitly invokes TriggerProtection for every watched asset; the
// breach evaluation itself never locks assets.
type Automator struct {
	engine *Engine
	logger *log.Logger
}

// NewAutomator creates an Automator and subscribes it to the engine bus.
func NewAutomator(e *Engine, logger *log.Logger) *Automator {
	if logger == nil {
		logger = log.Default()
	}
	a := &Automator{engine: e, logger: logger}
	e.Bus().Subscribe(a.onEvent)
	return a
}

func (a *Automator) onEvent(ev events.Event) {
	breach, ok := ev.(events.RiskThresholdBreached)
	if !ok {
		return
	}

	ctx := context.Background()
	profile, err := a.engine.profiles.GetByWallet(ctx, breach.Wallet)
	if err != nil {
		a.logger.Printf("automation for %s: load profile: %v", breach.Wallet, err)
		return
	}

	// Freeze takes precedence over swap when both are enabled.
	var action domain.ProtectionAction
	switch {
	case profile.Preferences.AutoFreeze:
		action = domain.ActionFreeze
	case profile.Preferences.AutoSwap:
		action = domain.ActionSwap
	default:
		return
	}

	for _, asset := range profile.Preferences.Watchlist {
		if err := a.engine.TriggerProtection(ctx, breach.Wallet, action, asset, 0); err != nil {
			a.logger.Printf("automation for %s: %s %s: %v", breach.Wallet, action, asset, err)
		}
	}
}
