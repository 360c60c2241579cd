// Command oraclesim runs a local oracle feed simulator. It generates an
// ed25519 keypair, prints the public key, and serves a websocket endpoint
// that streams signed risk-score updates for the configured wallets.
//
// Usage:
//
//	oraclesim --addr :9090 --wallets <base58>,<base58> --interval 2s
//	server --oracle-ws ws://localhost:9090/feed --oracle-pubkey <printed key>
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mr-tron/base58"

	"iris-engine/internal/oracle"
)

func main() {
	addr := flag.String("addr", ":9090", "Websocket listen address")
	walletsFlag := flag.String("wallets", "", "Comma-separated wallet pubkeys (base58) to report scores for")
	interval := flag.Duration("interval", 2*time.Second, "Delay between score updates")
	seedB58 := flag.String("seed", "", "Ed25519 seed (base58, 32 bytes); random if empty")
	flag.Parse()

	logger := log.New(os.Stdout, "[oraclesim] ", log.LstdFlags)

	wallets := splitWallets(*walletsFlag)
	if len(wallets) == 0 {
		logger.Fatal("--wallets is required")
	}

	priv, err := loadOrGenerateKey(*seedB58)
	if err != nil {
		logger.Fatalf("Key setup: %v", err)
	}
	pub := priv.Public().(ed25519.PublicKey)
	logger.Printf("Oracle public key: %s", base58.Encode(pub))

	sim := &simulator{
		priv:     priv,
		wallets:  wallets,
		interval: *interval,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/feed", sim.handleFeed)

	logger.Printf("Serving feed on ws://%s/feed for %d wallets every %s", *addr, len(wallets), *interval)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Fatalf("Listen: %v", err)
	}
}

type simulator struct {
	priv     ed25519.PrivateKey
	wallets  []string
	interval time.Duration
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// handleFeed streams signed updates to one subscriber until it disconnects.
func (s *simulator) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("Upgrade: %v", err)
		return
	}
	defer conn.Close()
	s.logger.Printf("Subscriber connected: %s", conn.RemoteAddr())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	for range ticker.C {
		wallet := s.wallets[i%len(s.wallets)]
		i++

		update, err := s.signedUpdate(wallet)
		if err != nil {
			s.logger.Printf("Sign update for %s: %v", wallet, err)
			continue
		}

		if err := conn.WriteJSON(update); err != nil {
			s.logger.Printf("Subscriber %s gone: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// signedUpdate builds one update with a random score for the wallet.
func (s *simulator) signedUpdate(wallet string) (*oracle.ScoreUpdate, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(101))
	if err != nil {
		return nil, err
	}
	score := uint8(n.Int64())
	timestamp := time.Now().UnixMilli()

	signature, err := oracle.SignScore(s.priv, wallet, score, timestamp)
	if err != nil {
		return nil, err
	}

	return &oracle.ScoreUpdate{
		Wallet:    wallet,
		Score:     score,
		Timestamp: timestamp,
		Signature: base58.Encode(signature),
	}, nil
}

func loadOrGenerateKey(seedB58 string) (ed25519.PrivateKey, error) {
	if seedB58 == "" {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		return priv, err
	}
	seed, err := base58.Decode(seedB58)
	if err != nil {
		return nil, err
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must decode to %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

func splitWallets(s string) []string {
	var out []string
	for _, w := range strings.Split(s, ",") {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
