// Package events defines the engine's emitted events and an in-process
// publish/subscribe bus. The engine publishes; consumers (archive writer,
// metrics, protection automation) subscribe independently.
package events

// Event kinds.
const (
	KindSubscriptionCreated   = "SUBSCRIPTION_CREATED"
	KindRiskThresholdBreached = "RISK_THRESHOLD_BREACHED"
	KindProtectionTriggered   = "PROTECTION_TRIGGERED"
	KindCoverageMinted        = "COVERAGE_MINTED"
	KindClaimInitiated        = "CLAIM_INITIATED"
	KindClaimVoted            = "CLAIM_VOTED"
	KindClaimResolved         = "CLAIM_RESOLVED"
)

// Event is implemented by all emitted event types.
type Event interface {
	// EventKind returns the event kind constant.
	EventKind() string
	// EventWallet returns the primary wallet the event concerns.
	EventWallet() string
	// EventTimestamp returns the event timestamp in milliseconds.
	EventTimestamp() int64
}

// SubscriptionCreated is emitted on a successful plan subscription.
type SubscriptionCreated struct {
	Wallet    string `json:"wallet"`
	PlanID    uint8  `json:"plan_id"`
	Expiry    int64  `json:"expiry"`
	Timestamp int64  `json:"timestamp"`
}

func (e SubscriptionCreated) EventKind() string     { return KindSubscriptionCreated }
func (e SubscriptionCreated) EventWallet() string   { return e.Wallet }
func (e SubscriptionCreated) EventTimestamp() int64 { return e.Timestamp }

// RiskThresholdBreached is emitted when an ingested score reaches the
// profile's configured threshold.
type RiskThresholdBreached struct {
	Wallet    string `json:"wallet"`
	Score     uint8  `json:"score"`
	Threshold uint8  `json:"threshold"`
	Timestamp int64  `json:"timestamp"`
}

func (e RiskThresholdBreached) EventKind() string     { return KindRiskThresholdBreached }
func (e RiskThresholdBreached) EventWallet() string   { return e.Wallet }
func (e RiskThresholdBreached) EventTimestamp() int64 { return e.Timestamp }

// ProtectionTriggered is emitted when a protection action is dispatched.
type ProtectionTriggered struct {
	Wallet    string `json:"wallet"`
	Action    string `json:"action"`
	Asset     string `json:"asset"`
	Amount    uint64 `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

func (e ProtectionTriggered) EventKind() string     { return KindProtectionTriggered }
func (e ProtectionTriggered) EventWallet() string   { return e.Wallet }
func (e ProtectionTriggered) EventTimestamp() int64 { return e.Timestamp }

// CoverageMinted is emitted when an insurance token is issued.
type CoverageMinted struct {
	Wallet     string `json:"wallet"`
	CoverageID string `json:"coverage_id"`
	TokenMint  string `json:"token_mint"`
	Tier       uint8  `json:"tier"`
	Expiry     int64  `json:"expiry"`
	PayoutCap  uint64 `json:"payout_cap"`
	Timestamp  int64  `json:"timestamp"`
}

func (e CoverageMinted) EventKind() string     { return KindCoverageMinted }
func (e CoverageMinted) EventWallet() string   { return e.Wallet }
func (e CoverageMinted) EventTimestamp() int64 { return e.Timestamp }

// ClaimInitiated is emitted when a claim is opened and its coverage escrowed.
type ClaimInitiated struct {
	Wallet     string `json:"wallet"`
	ClaimID    string `json:"claim_id"`
	CoverageID string `json:"coverage_id"`
	Amount     uint64 `json:"amount"`
	Timestamp  int64  `json:"timestamp"`
}

func (e ClaimInitiated) EventKind() string     { return KindClaimInitiated }
func (e ClaimInitiated) EventWallet() string   { return e.Wallet }
func (e ClaimInitiated) EventTimestamp() int64 { return e.Timestamp }

// ClaimVoted is emitted for every accepted governance vote, whether or
// not the vote resolved the claim.
type ClaimVoted struct {
	ClaimID   string `json:"claim_id"`
	Voter     string `json:"voter"`
	Approve   bool   `json:"approve"`
	Timestamp int64  `json:"timestamp"`
}

func (e ClaimVoted) EventKind() string     { return KindClaimVoted }
func (e ClaimVoted) EventWallet() string   { return e.Voter }
func (e ClaimVoted) EventTimestamp() int64 { return e.Timestamp }

// ClaimResolved is emitted when a claim reaches a terminal status.
type ClaimResolved struct {
	ClaimID    string `json:"claim_id"`
	CoverageID string `json:"coverage_id"`
	Claimant   string `json:"claimant"`
	Status     string `json:"status"`
	Timestamp  int64  `json:"timestamp"`
}

func (e ClaimResolved) EventKind() string     { return KindClaimResolved }
func (e ClaimResolved) EventWallet() string   { return e.Claimant }
func (e ClaimResolved) EventTimestamp() int64 { return e.Timestamp }
