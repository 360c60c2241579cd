package idhash

import (
	"testing"
)

func TestComputeCoverageID(t *testing.T) {
	tests := []struct {
		name      string
		owner     string
		tokenMint string
		tier      uint8
		issuedAt  int64
		wantLen   int // hash length should be 64
	}{
		{
			name:      "tier 1 coverage",
			owner:     "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
			tokenMint: "So11111111111111111111111111111111111111112",
			tier:      1,
			issuedAt:  1704067234567,
			wantLen:   64,
		},
		{
			name:      "tier 3 coverage",
			owner:     "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T",
			tokenMint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			tier:      3,
			issuedAt:  1704067300000,
			wantLen:   64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCoverageID(tt.owner, tt.tokenMint, tt.tier, tt.issuedAt)

			if len(got) != tt.wantLen {
				t.Errorf("ComputeCoverageID() length = %d, want %d", len(got), tt.wantLen)
			}

			// Verify determinism: same inputs should produce same output
			got2 := ComputeCoverageID(tt.owner, tt.tokenMint, tt.tier, tt.issuedAt)
			if got != got2 {
				t.Errorf("ComputeCoverageID() not deterministic: %s != %s", got, got2)
			}
		})
	}
}

func TestComputeCoverageID_DifferentInputs(t *testing.T) {
	base := ComputeCoverageID("owner", "mint", 1, 1000)

	diffOwner := ComputeCoverageID("other_owner", "mint", 1, 1000)
	if base == diffOwner {
		t.Error("Different owner should produce different hash")
	}

	diffMint := ComputeCoverageID("owner", "other_mint", 1, 1000)
	if base == diffMint {
		t.Error("Different mint should produce different hash")
	}

	diffTier := ComputeCoverageID("owner", "mint", 2, 1000)
	if base == diffTier {
		t.Error("Different tier should produce different hash")
	}

	diffTime := ComputeCoverageID("owner", "mint", 1, 2000)
	if base == diffTime {
		t.Error("Different issue time should produce different hash")
	}
}

func TestComputeClaimID(t *testing.T) {
	coverageID := "abc123def456"
	claimant := "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	initiatedAt := int64(1704067234567)

	got := ComputeClaimID(coverageID, claimant, 0, initiatedAt)
	if len(got) != 64 {
		t.Errorf("ComputeClaimID() length = %d, want 64", len(got))
	}

	// Compute multiple times
	results := make([]string, 10)
	for i := 0; i < 10; i++ {
		results[i] = ComputeClaimID(coverageID, claimant, 0, initiatedAt)
	}

	// All should be identical
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Errorf("Determinism failed: results[%d]=%s != results[0]=%s", i, results[i], results[0])
		}
	}
}

func TestComputeClaimID_DifferentInputs(t *testing.T) {
	base := ComputeClaimID("coverage", "claimant", 0, 1000)

	diffCoverage := ComputeClaimID("other_coverage", "claimant", 0, 1000)
	if base == diffCoverage {
		t.Error("Different coverage should produce different hash")
	}

	diffClaimant := ComputeClaimID("coverage", "other_claimant", 0, 1000)
	if base == diffClaimant {
		t.Error("Different claimant should produce different hash")
	}

	diffTime := ComputeClaimID("coverage", "claimant", 0, 2000)
	if base == diffTime {
		t.Error("Different initiation time should produce different hash")
	}

	diffSequence := ComputeClaimID("coverage", "claimant", 1, 1000)
	if base == diffSequence {
		t.Error("Different sequence should produce different hash")
	}
}
