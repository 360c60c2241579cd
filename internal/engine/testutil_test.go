package engine

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"log"
	"testing"

	"github.com/mr-tron/base58"

	"iris-engine/internal/domain"
	"iris-engine/internal/events"
	"iris-engine/internal/oracle"
	"iris-engine/internal/storage/memory"
	"iris-engine/internal/treasury"
)

const (
	testTreasury  = "treasury-account"
	testEscrow    = "escrow-account"
	testPool      = "pool-account"
	testAuthority = "governance-authority"
	testQuorum    = 3

	dayMs = int64(24 * 60 * 60 * 1000)
)

// testEnv bundles an engine with its collaborators for assertions.
type testEnv struct {
	engine   *Engine
	profiles *memory.ProfileStore
	coverage *memory.CoverageStore
	claims   *memory.ClaimStore
	actions  *memory.ActionLogStore
	scores   *memory.ScoreArchiveStore
	ledger   *treasury.Ledger
	recorder *events.Recorder

	oracleKey ed25519.PrivateKey
	nowMs     int64
}

// newTestEnv builds an engine over memory stores with a deterministic
// clock starting at nowMs = 1_700_000_000_000.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate oracle key: %v", err)
	}

	verifier, err := oracle.NewEd25519Verifier(base58.Encode(pub))
	if err != nil {
		t.Fatalf("create verifier: %v", err)
	}

	env := &testEnv{
		profiles:  memory.NewProfileStore(),
		coverage:  memory.NewCoverageStore(),
		claims:    memory.NewClaimStore(),
		actions:   memory.NewActionLogStore(),
		scores:    memory.NewScoreArchiveStore(),
		ledger:    treasury.NewLedger(),
		oracleKey: priv,
		nowMs:     1_700_000_000_000,
	}

	bus := events.NewBus()
	env.recorder = events.NewRecorder(bus)

	eng, err := New(Options{
		Profiles:     env.profiles,
		Coverage:     env.coverage,
		Claims:       env.claims,
		ActionLogs:   env.actions,
		ScoreArchive: env.scores,
		Transfer:     env.ledger,
		Verifier:     verifier,
		Governance:   domain.Governance{Authority: testAuthority, Quorum: testQuorum, VotingDurationMs: 7 * dayMs},
		Bus:          bus,
		Logger:       log.New(testWriter{t}, "[engine-test] ", 0),
		Now:          func() int64 { return env.nowMs },
	}, Accounts{Treasury: testTreasury, Escrow: testEscrow, Pool: testPool})
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	env.engine = eng

	return env
}

// testWriter routes engine logs through t.Logf.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Logf("%s", p)
	return len(p), nil
}

// newWallet generates a fresh 32-byte base58 wallet address.
func newWallet(t *testing.T) string {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate wallet key: %v", err)
	}
	return base58.Encode(pub)
}

// createProfile registers a wallet with the given preferences.
func (env *testEnv) createProfile(t *testing.T, wallet string, prefs domain.RiskParams) {
	t.Helper()
	if _, err := env.engine.CreateProfile(context.Background(), wallet, prefs); err != nil {
		t.Fatalf("create profile: %v", err)
	}
}

// subscribe funds the wallet and activates plan 1 for 30 days.
func (env *testEnv) subscribe(t *testing.T, wallet string) {
	t.Helper()
	env.ledger.Credit(wallet, 10_000_000)
	if err := env.engine.Subscribe(context.Background(), wallet, 1, 30*dayMs, 10_000_000); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
}

// ingestScore signs and ingests a score for the wallet.
func (env *testEnv) ingestScore(t *testing.T, wallet string, score uint8, timestamp int64) {
	t.Helper()
	sig, err := oracle.SignScore(env.oracleKey, wallet, score, timestamp)
	if err != nil {
		t.Fatalf("sign score: %v", err)
	}
	if err := env.engine.UpdateRiskScore(context.Background(), wallet, score, timestamp, sig); err != nil {
		t.Fatalf("ingest score: %v", err)
	}
}

// mintCoverage issues a coverage token with the given cap, valid 90 days.
func (env *testEnv) mintCoverage(t *testing.T, wallet string, payoutCap uint64) *domain.Coverage {
	t.Helper()
	cov, err := env.engine.MintCoverage(context.Background(), wallet, 1, payoutCap, 90*dayMs)
	if err != nil {
		t.Fatalf("mint coverage: %v", err)
	}
	return cov
}
