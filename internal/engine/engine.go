// Package engine implements the insurance core: subscription ledger,
// risk-score ingestion with threshold triggers, coverage issuance, and
// the claim/voting state machine.
//
// Every public operation is atomic per call: preconditions are checked
// first, external collaborators are invoked next, and record mutations
// are persisted last, so any failure leaves no observable partial state.
// The hosting environment serializes operations that touch the same
// record; the engine itself takes no locks.
package engine

import (
	"fmt"
	"log"
	"time"

	"iris-engine/internal/domain"
	"iris-engine/internal/events"
	"iris-engine/internal/governance"
	"iris-engine/internal/oracle"
	"iris-engine/internal/storage"
	"iris-engine/internal/treasury"
)

// Accounts identifies the well-known system accounts the engine moves
// value between.
type Accounts struct {
	Treasury string // receives subscription payments
	Escrow   string // holds coverage tokens of open claims
	Pool     string // funds approved claim payouts
}

// Options contains configuration for creating an Engine.
type Options struct {
	Profiles     storage.ProfileStore
	Coverage     storage.CoverageStore
	Claims       storage.ClaimStore
	ActionLogs   storage.ActionLogStore
	ScoreArchive storage.ScoreArchiveStore // optional analytics archive
	Transfer     treasury.AssetTransfer
	Verifier     oracle.Verifier
	Governance   domain.Governance
	Policy       governance.Policy // defaults to AuthorityPolicy
	Bus          *events.Bus       // defaults to a fresh bus
	Logger       *log.Logger
	Now          func() int64 // current time in ms, defaults to wall clock
}

// Engine is the insurance core.
type Engine struct {
	profiles     storage.ProfileStore
	coverage     storage.CoverageStore
	claims       storage.ClaimStore
	actionLogs   storage.ActionLogStore
	scoreArchive storage.ScoreArchiveStore
	transfer     treasury.AssetTransfer
	verifier     oracle.Verifier
	gov          domain.Governance
	policy       governance.Policy
	bus          *events.Bus
	logger       *log.Logger
	now          func() int64
	accounts     Accounts
}

// New creates an Engine. Required: stores, transfer service, verifier,
// a valid governance config, and non-empty system accounts.
func New(opts Options, accounts Accounts) (*Engine, error) {
	if opts.Profiles == nil || opts.Coverage == nil || opts.Claims == nil || opts.ActionLogs == nil {
		return nil, fmt.Errorf("engine: all stores are required")
	}
	if opts.Transfer == nil {
		return nil, fmt.Errorf("engine: asset transfer service is required")
	}
	if opts.Verifier == nil {
		return nil, fmt.Errorf("engine: oracle verifier is required")
	}
	if accounts.Treasury == "" || accounts.Escrow == "" || accounts.Pool == "" {
		return nil, fmt.Errorf("engine: treasury, escrow and pool accounts are required")
	}

	policy := opts.Policy
	if policy == nil {
		p, err := governance.NewAuthorityPolicy(opts.Governance)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		policy = p
	} else if !opts.Governance.IsValid() {
		return nil, fmt.Errorf("engine: invalid governance config")
	}

	bus := opts.Bus
	if bus == nil {
		bus = events.NewBus()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	now := opts.Now
	if now == nil {
		now = func() int64 { return time.Now().UnixMilli() }
	}

	return &Engine{
		profiles:     opts.Profiles,
		coverage:     opts.Coverage,
		claims:       opts.Claims,
		actionLogs:   opts.ActionLogs,
		scoreArchive: opts.ScoreArchive,
		transfer:     opts.Transfer,
		verifier:     opts.Verifier,
		gov:          opts.Governance,
		policy:       policy,
		bus:          bus,
		logger:       logger,
		now:          now,
		accounts:     accounts,
	}, nil
}

// Bus returns the engine's event bus for subscribing consumers.
func (e *Engine) Bus() *events.Bus {
	return e.bus
}

// requireActiveSubscription checks the shared subscription gate.
func requireActiveSubscription(p *domain.UserProfile, nowMs int64) error {
	if !p.ActiveSub {
		return ErrNoActiveSubscription
	}
	if nowMs >= p.SubscriptionExpiry {
		return ErrSubscriptionExpired
	}
	return nil
}
