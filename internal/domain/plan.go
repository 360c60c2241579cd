package domain

// SubscriptionPlan describes a fixed protection plan.
type SubscriptionPlan struct {
	ID         uint8
	DurationMs int64  // nominal plan duration in milliseconds
	Price      uint64 // price in 6-decimal payment units
}

// Fixed plan table. Prices are in 6-decimal units (10 and 25 USDC).
var plans = map[uint8]SubscriptionPlan{
	1: {ID: 1, DurationMs: 30 * 24 * 60 * 60 * 1000, Price: 10_000_000},
	2: {ID: 2, DurationMs: 90 * 24 * 60 * 60 * 1000, Price: 25_000_000},
}

// PlanByID looks up a plan by its identifier.
// The second return value is false for unknown plan IDs.
func PlanByID(id uint8) (SubscriptionPlan, bool) {
	p, ok := plans[id]
	return p, ok
}
