package engine

import (
	"context"
	"fmt"

	"iris-engine/internal/domain"
	"iris-engine/internal/events"
	"iris-engine/internal/observability"
)

// UpdateRiskScore admits an oracle-signed score for the wallet.
//
// This is the single ingress point for score-driven behavior: the
// signature is verified against the oracle key, the score is appended to
// the profile's bounded history (FIFO eviction at capacity), and the
// threshold trigger is evaluated. A breach emits RiskThresholdBreached;
// it never locks assets by itself.
func (e *Engine) UpdateRiskScore(ctx context.Context, wallet string, score uint8, timestamp int64, signature []byte) error {
	profile, err := e.profiles.GetByWallet(ctx, wallet)
	if err != nil {
		return fmt.Errorf("update risk score %s: %w", wallet, err)
	}

	if err := e.verifier.Verify(wallet, score, timestamp, signature); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	profile.AppendScore(domain.Score{Value: score, Timestamp: timestamp})
	if err := e.profiles.Update(ctx, profile); err != nil {
		return fmt.Errorf("update risk score %s: persist profile: %w", wallet, err)
	}

	breached := score >= profile.Preferences.RiskThreshold
	observability.RecordScoreIngested(breached)

	e.archiveScore(ctx, profile, score, timestamp, breached)

	if breached {
		e.bus.Publish(events.RiskThresholdBreached{
			Wallet:    wallet,
			Score:     score,
			Threshold: profile.Preferences.RiskThreshold,
			Timestamp: e.now(),
		})
	}

	return nil
}

// archiveScore writes the score to the analytics archive. The bounded
// in-profile history is the record of truth; archive failures are logged
// and do not fail the ingestion.
func (e *Engine) archiveScore(ctx context.Context, profile *domain.UserProfile, score uint8, timestamp int64, breached bool) {
	if e.scoreArchive == nil {
		return
	}

	point := &domain.ScoreArchivePoint{
		Wallet:      profile.Wallet,
		Score:       score,
		Threshold:   profile.Preferences.RiskThreshold,
		Breached:    breached,
		TimestampMs: timestamp,
		IngestedAt:  e.now(),
	}
	if err := e.scoreArchive.InsertBulk(ctx, []*domain.ScoreArchivePoint{point}); err != nil {
		e.logger.Printf("archive score for %s: %v", profile.Wallet, err)
	}
}
