package domain

// ScoreHistoryCap is the maximum number of scores retained per profile.
// Appending beyond the cap evicts the oldest entry (FIFO).
const ScoreHistoryCap = 10

// WatchlistCap is the maximum number of asset mints in a risk watchlist.
const WatchlistCap = 10

// RiskParams holds a user's protection preferences.
type RiskParams struct {
	RiskThreshold uint8    // breach when score >= threshold
	Watchlist     []string // watched asset mints (base58), max WatchlistCap
	AutoSwap      bool     // dispatch swap on breach
	AutoFreeze    bool     // dispatch freeze on breach
}

// Score is a single oracle-reported risk score.
type Score struct {
	Value     uint8 // risk score 0-255
	Timestamp int64 // Unix timestamp in milliseconds (oracle-supplied)
}

// UserProfile represents a protected user.
// Corresponds to user_profiles table in PostgreSQL.
type UserProfile struct {
	Wallet             string     // owning wallet pubkey (base58), primary key
	Preferences        RiskParams // risk preferences
	ActiveSub          bool       // subscription active flag
	SubscriptionExpiry int64      // Unix timestamp in milliseconds
	ScoreHistory       []Score    // bounded recent scores, oldest first
	CreatedAt          int64      // record creation timestamp (ms)
}

// AppendScore appends a score to the bounded history, evicting the
// oldest entry when the history is at capacity.
func (p *UserProfile) AppendScore(s Score) {
	p.ScoreHistory = append(p.ScoreHistory, s)
	if len(p.ScoreHistory) > ScoreHistoryCap {
		p.ScoreHistory = p.ScoreHistory[len(p.ScoreHistory)-ScoreHistoryCap:]
	}
}

// LatestScore returns the most recently appended score.
// The second return value is false when the history is empty.
func (p *UserProfile) LatestScore() (Score, bool) {
	if len(p.ScoreHistory) == 0 {
		return Score{}, false
	}
	return p.ScoreHistory[len(p.ScoreHistory)-1], true
}
