package engine

import "errors"

// Precondition errors. Every operation checks its preconditions in order
// and aborts on the first failure with no partial state mutation; there
// is no retry path inside the engine.
var (
	// ErrInsufficientPayment is returned when a subscription payment is
	// below the plan price.
	ErrInsufficientPayment = errors.New("insufficient payment for selected plan")

	// ErrInvalidPlan is returned for unknown subscription plan IDs.
	ErrInvalidPlan = errors.New("invalid subscription plan")

	// ErrNoActiveSubscription is returned when an operation requires an
	// active subscription and the profile has none.
	ErrNoActiveSubscription = errors.New("no active subscription")

	// ErrSubscriptionExpired is returned when the subscription expiry has
	// passed.
	ErrSubscriptionExpired = errors.New("subscription has expired")

	// ErrInvalidAction is returned for protection actions the engine does
	// not dispatch.
	ErrInvalidAction = errors.New("invalid protection action")

	// ErrEmptyScoreHistory is returned when a protection action is
	// triggered before any score has been ingested.
	ErrEmptyScoreHistory = errors.New("no risk score has been ingested")

	// ErrInsuranceExpired is returned when the coverage expiry has passed.
	ErrInsuranceExpired = errors.New("insurance coverage has expired")

	// ErrClaimExceedsCap is returned when a claim amount exceeds the
	// coverage payout cap.
	ErrClaimExceedsCap = errors.New("claim amount exceeds coverage cap")

	// ErrProofTooLarge is returned when a claim proof exceeds
	// domain.MaxProofSize.
	ErrProofTooLarge = errors.New("claim proof exceeds size bound")

	// ErrCoverageLocked is returned when the coverage is already escrowed
	// by another claim.
	ErrCoverageLocked = errors.New("coverage is escrowed by an open claim")

	// ErrUnauthorizedClaimant is returned when the claimant does not own
	// the coverage being claimed.
	ErrUnauthorizedClaimant = errors.New("claimant does not own the coverage")

	// ErrUnauthorizedGovernance is returned when the voter is not
	// authorized by the governance policy.
	ErrUnauthorizedGovernance = errors.New("unauthorized governance action")

	// ErrClaimResolved is returned when voting on a claim that already
	// reached a terminal status.
	ErrClaimResolved = errors.New("claim is already resolved")

	// ErrInvalidSignature is returned when oracle signature verification
	// fails.
	ErrInvalidSignature = errors.New("invalid oracle signature")

	// ErrWatchlistTooLarge is returned when profile preferences exceed
	// the watchlist capacity.
	ErrWatchlistTooLarge = errors.New("watchlist exceeds capacity")
)
