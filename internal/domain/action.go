package domain

// ProtectionAction represents a protective operation kind.
type ProtectionAction string

const (
	ActionSwap   ProtectionAction = "SWAP"
	ActionFreeze ProtectionAction = "FREEZE"
	// Declared but not dispatchable; TriggerProtection rejects them.
	ActionAlert ProtectionAction = "ALERT"
	ActionClaim ProtectionAction = "CLAIM"
)

// String returns the string representation of ProtectionAction.
func (a ProtectionAction) String() string {
	return string(a)
}

// IsValid checks if the action is a declared value.
func (a ProtectionAction) IsValid() bool {
	switch a {
	case ActionSwap, ActionFreeze, ActionAlert, ActionClaim:
		return true
	}
	return false
}

// Dispatchable reports whether the engine implements the action.
func (a ProtectionAction) Dispatchable() bool {
	return a == ActionSwap || a == ActionFreeze
}

// ActionLog is an append-only audit record of a protection action.
// Corresponds to action_logs table in PostgreSQL.
type ActionLog struct {
	ID        int64            // BIGSERIAL primary key
	Wallet    string           // acting wallet pubkey (base58)
	Timestamp int64            // action timestamp (ms)
	Action    ProtectionAction // dispatched action kind
	Asset     string           // affected asset mint (base58)
	Score     uint8            // latest known risk score at trigger time
	CreatedAt int64            // record creation timestamp (ms)
}
