// Package main provides the unified insurance engine server:
// - Ingestion (continuous): oracle websocket feed of signed risk scores
// - Automation: threshold-breach driven protection dispatch
// - API: profile, subscription, coverage and claim operations over HTTP
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/mr-tron/base58"

	"iris-engine/internal/domain"
	"iris-engine/internal/engine"
	"iris-engine/internal/events"
	"iris-engine/internal/observability"
	"iris-engine/internal/oracle"
	"iris-engine/internal/storage"
	chstore "iris-engine/internal/storage/clickhouse"
	"iris-engine/internal/storage/memory"
	"iris-engine/internal/storage/migrations"
	pgstore "iris-engine/internal/storage/postgres"
	"iris-engine/internal/treasury"
)

// Server holds all components of the unified service.
type Server struct {
	engine *engine.Engine
	ledger *treasury.Ledger
	logger *log.Logger

	oracleWS string
	feedCfg  oracle.FeedConfig

	// State
	started        time.Time
	scoresIngested atomic.Int64
	scoresRejected atomic.Int64
	feedConnected  atomic.Bool
}

// allStores holds all storage implementations.
type allStores struct {
	profileStore      storage.ProfileStore
	coverageStore     storage.CoverageStore
	claimStore        storage.ClaimStore
	actionLogStore    storage.ActionLogStore
	scoreArchiveStore storage.ScoreArchiveStore
	eventArchiveStore storage.EventArchiveStore
}

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	httpAddr := flag.String("http-addr", envOr("HTTP_ADDR", ":8080"), "HTTP API and metrics address")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL/ClickHouse")
	oracleWS := flag.String("oracle-ws", os.Getenv("ORACLE_WS_ENDPOINT"), "Oracle websocket feed endpoint (optional)")
	oraclePubkey := flag.String("oracle-pubkey", os.Getenv("ORACLE_PUBKEY"), "Oracle ed25519 public key (base58)")
	authority := flag.String("governance-authority", os.Getenv("GOVERNANCE_AUTHORITY"), "Authorized governance voter")
	quorum := flag.Uint64("governance-quorum", 3, "Votes required to resolve a claim")
	votingDuration := flag.Duration("voting-duration", 7*24*time.Hour, "Claim voting window")
	treasuryAccount := flag.String("treasury-account", envOr("TREASURY_ACCOUNT", "treasury"), "Treasury account for subscription payments")
	escrowAccount := flag.String("escrow-account", envOr("ESCROW_ACCOUNT", "escrow"), "Escrow account for claimed coverage tokens")
	poolAccount := flag.String("pool-account", envOr("POOL_ACCOUNT", "pool"), "Insurance pool account for payouts")
	poolBalance := flag.Uint64("pool-balance", 0, "Initial insurance pool balance (6-decimal units)")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	// Validate required flags
	if *oraclePubkey == "" {
		logger.Fatal("--oracle-pubkey is required")
	}
	if *authority == "" {
		logger.Fatal("--governance-authority is required")
	}
	if !*useMemory && (*postgresDSN == "" || *clickhouseDSN == "") {
		logger.Fatal("--postgres-dsn and --clickhouse-dsn are required (use --use-memory for in-memory storage)")
	}

	verifier, err := oracle.NewEd25519Verifier(*oraclePubkey)
	if err != nil {
		logger.Fatalf("Invalid oracle pubkey: %v", err)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())

	// Create stores
	stores, cleanup, err := createStores(ctx, *postgresDSN, *clickhouseDSN, *useMemory)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer cleanup()

	// Asset transfer venue. The in-memory ledger stands in for the
	// external settlement integration; the pool account funds payouts.
	ledger := treasury.NewLedger()
	if *poolBalance > 0 {
		ledger.Credit(*poolAccount, *poolBalance)
	}

	eng, err := engine.New(engine.Options{
		Profiles:     stores.profileStore,
		Coverage:     stores.coverageStore,
		Claims:       stores.claimStore,
		ActionLogs:   stores.actionLogStore,
		ScoreArchive: stores.scoreArchiveStore,
		Transfer:     ledger,
		Verifier:     verifier,
		Governance: domain.Governance{
			Authority:        *authority,
			Quorum:           *quorum,
			VotingDurationMs: votingDuration.Milliseconds(),
		},
		Logger: log.New(os.Stdout, "[engine] ", log.LstdFlags),
	}, engine.Accounts{
		Treasury: *treasuryAccount,
		Escrow:   *escrowAccount,
		Pool:     *poolAccount,
	})
	if err != nil {
		logger.Fatalf("Failed to create engine: %v", err)
	}

	// Bus consumers: event archive and protection automation
	events.NewArchiver(eng.Bus(), stores.eventArchiveStore, log.New(os.Stdout, "[archiver] ", log.LstdFlags))
	engine.NewAutomator(eng, log.New(os.Stdout, "[automation] ", log.LstdFlags))

	server := &Server{
		engine:   eng,
		ledger:   ledger,
		logger:   logger,
		oracleWS: *oracleWS,
		feedCfg:  oracle.DefaultFeedConfig(),
		started:  time.Now(),
	}

	// Channel to signal completion
	done := make(chan error, 1)

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)
		cancel()

		select {
		case sig := <-sigCh:
			logger.Printf("Received second signal %v, forcing immediate shutdown", sig)
			os.Exit(1)
		case <-time.After(30 * time.Second):
			logger.Println("Graceful shutdown timed out after 30s, forcing exit")
			os.Exit(1)
		case <-done:
			// Normal shutdown completed
		}
	}()

	// Start HTTP server
	go server.startHTTPServer(*httpAddr)

	// Run the ingestion loop (or idle until cancelled without a feed)
	err = server.Run(ctx)
	done <- err
	cancel()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("Server error: %v", err)
	}

	logger.Println("Shutdown complete")
}

// createStores creates all required stores and applies migrations.
func createStores(ctx context.Context, postgresDSN, clickhouseDSN string, useMemory bool) (*allStores, func(), error) {
	if useMemory {
		stores := &allStores{
			profileStore:      memory.NewProfileStore(),
			coverageStore:     memory.NewCoverageStore(),
			claimStore:        memory.NewClaimStore(),
			actionLogStore:    memory.NewActionLogStore(),
			scoreArchiveStore: memory.NewScoreArchiveStore(),
			eventArchiveStore: memory.NewEventArchiveStore(),
		}
		return stores, func() {}, nil
	}

	// PostgreSQL
	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("postgres migrations: %w", err)
	}

	// ClickHouse
	chConn, err := migrations.RunClickhouseMigrations(ctx, clickhouseDSN)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("clickhouse migrations: %w", err)
	}

	stores := &allStores{
		// PostgreSQL stores (engine state)
		profileStore:   pgstore.NewProfileStore(pool),
		coverageStore:  pgstore.NewCoverageStore(pool),
		claimStore:     pgstore.NewClaimStore(pool),
		actionLogStore: pgstore.NewActionLogStore(pool),

		// ClickHouse stores (analytics archives)
		scoreArchiveStore: chstore.NewScoreArchiveStore(chConn),
		eventArchiveStore: chstore.NewEventArchiveStore(chConn),
	}

	cleanup := func() {
		chConn.Close()
		pool.Close()
	}

	return stores, cleanup, nil
}

// Run consumes the oracle feed until the context is cancelled. Without a
// configured feed endpoint the engine serves the HTTP API only.
func (s *Server) Run(ctx context.Context) error {
	if s.oracleWS == "" {
		s.logger.Println("No oracle feed configured; serving API only")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Printf("Connecting to oracle feed %s...", s.oracleWS)
	client, err := oracle.NewFeedClient(ctx, s.oracleWS, &s.feedCfg, log.New(os.Stdout, "[oracle] ", log.LstdFlags))
	if err != nil {
		return fmt.Errorf("connect oracle feed: %w", err)
	}
	defer client.Close()

	s.feedConnected.Store(true)
	observability.DefaultMetrics.FeedConnected.Set(1)
	defer func() {
		s.feedConnected.Store(false)
		observability.DefaultMetrics.FeedConnected.Set(0)
	}()

	s.logger.Println("Oracle feed connected")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-client.Updates():
			if !ok {
				return fmt.Errorf("oracle feed closed")
			}
			s.ingestUpdate(ctx, update)
		}
	}
}

// ingestUpdate admits one feed update into the engine.
func (s *Server) ingestUpdate(ctx context.Context, update *oracle.ScoreUpdate) {
	signature, err := base58.Decode(update.Signature)
	if err != nil {
		s.scoresRejected.Add(1)
		observability.RecordFeedError("bad_signature_encoding")
		s.logger.Printf("Drop update for %s: decode signature: %v", update.Wallet, err)
		return
	}

	err = s.engine.UpdateRiskScore(ctx, update.Wallet, update.Score, update.Timestamp, signature)
	switch {
	case err == nil:
		s.scoresIngested.Add(1)
		observability.DefaultMetrics.LastSuccessfulIngestion.SetToCurrentTime()
	case errors.Is(err, engine.ErrInvalidSignature):
		s.scoresRejected.Add(1)
		observability.RecordSignatureFailure()
		s.logger.Printf("Drop update for %s: %v", update.Wallet, err)
	case errors.Is(err, storage.ErrNotFound):
		s.scoresRejected.Add(1)
		observability.RecordFeedError("unknown_wallet")
	default:
		s.scoresRejected.Add(1)
		observability.RecordFeedError("ingest")
		s.logger.Printf("Ingest update for %s: %v", update.Wallet, err)
	}
}

// startHTTPServer starts the HTTP server for the API, health and metrics.
func (s *Server) startHTTPServer(addr string) {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Prometheus metrics
	mux.Handle("/metrics", observability.Handler())

	// Status endpoint
	mux.HandleFunc("/status", s.handleStatus)

	// Engine API
	mux.HandleFunc("/v1/profiles", s.handleProfiles)
	mux.HandleFunc("/v1/subscribe", s.handleSubscribe)
	mux.HandleFunc("/v1/scores", s.handleScores)
	mux.HandleFunc("/v1/protect", s.handleProtect)
	mux.HandleFunc("/v1/coverage", s.handleCoverage)
	mux.HandleFunc("/v1/claims", s.handleClaims)
	mux.HandleFunc("/v1/claims/vote", s.handleVote)
	mux.HandleFunc("/v1/actions", s.handleActions)

	s.logger.Printf("Starting HTTP server on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
		s.logger.Printf("HTTP server error: %v", err)
	}
}

// StatusResponse is the JSON response for /status endpoint.
type StatusResponse struct {
	Status         string `json:"status"`
	Uptime         string `json:"uptime"`
	FeedConnected  bool   `json:"feed_connected"`
	ScoresIngested int64  `json:"scores_ingested"`
	ScoresRejected int64  `json:"scores_rejected"`
}

// handleStatus returns server status as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:         "running",
		Uptime:         time.Since(s.started).String(),
		FeedConnected:  s.feedConnected.Load(),
		ScoresIngested: s.scoresIngested.Load(),
		ScoresRejected: s.scoresRejected.Load(),
	})
}

type createProfileRequest struct {
	Wallet        string   `json:"wallet"`
	RiskThreshold uint8    `json:"risk_threshold"`
	Watchlist     []string `json:"watchlist"`
	AutoSwap      bool     `json:"auto_swap"`
	AutoFreeze    bool     `json:"auto_freeze"`
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req createProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Wallet == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		profile, err := s.engine.CreateProfile(r.Context(), req.Wallet, domain.RiskParams{
			RiskThreshold: req.RiskThreshold,
			Watchlist:     req.Watchlist,
			AutoSwap:      req.AutoSwap,
			AutoFreeze:    req.AutoFreeze,
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, profile)

	case http.MethodGet:
		wallet := r.URL.Query().Get("wallet")
		if wallet == "" {
			writeError(w, http.StatusBadRequest, "wallet query parameter is required")
			return
		}
		profile, err := s.engine.Profile(r.Context(), wallet)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type subscribeRequest struct {
	Wallet        string `json:"wallet"`
	PlanID        uint8  `json:"plan_id"`
	DurationMs    int64  `json:"duration_ms"`
	PaymentAmount uint64 `json:"payment_amount"`
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Wallet == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The in-memory ledger has no deposit path of its own, so the
	// handler funds the wallet with the declared payment before the
	// engine charges it. A real settlement venue replaces both this
	// Credit and the AssetTransfer wiring; the price floor is then
	// backed by actual balances.
	s.ledger.Credit(req.Wallet, req.PaymentAmount)

	if err := s.engine.Subscribe(r.Context(), req.Wallet, req.PlanID, req.DurationMs, req.PaymentAmount); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}

type scoreRequest struct {
	Wallet    string `json:"wallet"`
	Score     uint8  `json:"score"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"` // base58
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Wallet == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	signature, err := base58.Decode(req.Signature)
	if err != nil {
		writeError(w, http.StatusBadRequest, "signature is not valid base58")
		return
	}

	if err := s.engine.UpdateRiskScore(r.Context(), req.Wallet, req.Score, req.Timestamp, signature); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ingested"})
}

type protectRequest struct {
	Wallet string `json:"wallet"`
	Action string `json:"action"`
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
}

func (s *Server) handleProtect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req protectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Wallet == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.engine.TriggerProtection(r.Context(), req.Wallet, domain.ProtectionAction(req.Action), req.Asset, req.Amount)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "dispatched"})
}

type mintCoverageRequest struct {
	Wallet     string `json:"wallet"`
	Tier       uint8  `json:"tier"`
	PayoutCap  uint64 `json:"payout_cap"`
	DurationMs int64  `json:"duration_ms"`
}

func (s *Server) handleCoverage(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req mintCoverageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Wallet == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		coverage, err := s.engine.MintCoverage(r.Context(), req.Wallet, req.Tier, req.PayoutCap, req.DurationMs)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, coverage)

	case http.MethodGet:
		owner := r.URL.Query().Get("owner")
		if owner == "" {
			writeError(w, http.StatusBadRequest, "owner query parameter is required")
			return
		}
		coverages, err := s.engine.CoverageByOwner(r.Context(), owner)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, coverages)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type initiateClaimRequest struct {
	CoverageID string `json:"coverage_id"`
	Claimant   string `json:"claimant"`
	Amount     uint64 `json:"amount"`
	Proof      string `json:"proof"` // base64
}

func (s *Server) handleClaims(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req initiateClaimRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CoverageID == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var proof []byte
		if req.Proof != "" {
			decoded, err := base64.StdEncoding.DecodeString(req.Proof)
			if err != nil {
				writeError(w, http.StatusBadRequest, "proof is not valid base64")
				return
			}
			proof = decoded
		}

		claim, err := s.engine.InitiateClaim(r.Context(), req.CoverageID, req.Claimant, req.Amount, proof)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, claim)

	case http.MethodGet:
		claimant := r.URL.Query().Get("claimant")
		if claimant == "" {
			writeError(w, http.StatusBadRequest, "claimant query parameter is required")
			return
		}
		claims, err := s.engine.ClaimsByClaimant(r.Context(), claimant)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, claims)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type voteRequest struct {
	ClaimID string `json:"claim_id"`
	Voter   string `json:"voter"`
	Approve bool   `json:"approve"`
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClaimID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claim, err := s.engine.VoteOnClaim(r.Context(), req.ClaimID, req.Voter, req.Approve)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, claim)
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	wallet := r.URL.Query().Get("wallet")
	if wallet == "" {
		writeError(w, http.StatusBadRequest, "wallet query parameter is required")
		return
	}

	logs, err := s.engine.ActionHistory(r.Context(), wallet)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// writeEngineError maps engine errors to HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrDuplicateKey):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrInsufficientPayment):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, engine.ErrUnauthorizedGovernance),
		errors.Is(err, engine.ErrUnauthorizedClaimant):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, engine.ErrCoverageLocked),
		errors.Is(err, engine.ErrClaimResolved):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrInvalidPlan),
		errors.Is(err, engine.ErrInvalidAction),
		errors.Is(err, engine.ErrInvalidSignature),
		errors.Is(err, engine.ErrProofTooLarge),
		errors.Is(err, engine.ErrClaimExceedsCap),
		errors.Is(err, engine.ErrWatchlistTooLarge),
		errors.Is(err, engine.ErrNoActiveSubscription),
		errors.Is(err, engine.ErrSubscriptionExpired),
		errors.Is(err, engine.ErrInsuranceExpired),
		errors.Is(err, engine.ErrEmptyScoreHistory),
		errors.Is(err, storage.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
