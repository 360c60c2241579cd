package main

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
)

func TestLoadOrGenerateKey(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)

	priv, err := loadOrGenerateKey(base58.Encode(seed))
	if err != nil {
		t.Fatalf("loadOrGenerateKey failed: %v", err)
	}
	if !priv.Equal(ed25519.NewKeyFromSeed(seed)) {
		t.Error("Seeded key must be deterministic")
	}

	random, err := loadOrGenerateKey("")
	if err != nil {
		t.Fatalf("Random key generation failed: %v", err)
	}
	if random.Equal(priv) {
		t.Error("Random key should not match the seeded key")
	}
}

func TestLoadOrGenerateKey_BadSeed(t *testing.T) {
	if _, err := loadOrGenerateKey("not-base58-0OIl"); err == nil {
		t.Error("Expected error for non-base58 seed")
	}

	// Decodes fine but is not SeedSize bytes; must error, not panic.
	short := base58.Encode([]byte{1, 2, 3})
	if _, err := loadOrGenerateKey(short); err == nil {
		t.Error("Expected error for short seed")
	}
}
