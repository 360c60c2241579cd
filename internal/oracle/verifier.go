// Package oracle implements verification and transport for risk-score
// updates signed by the off-chain risk oracle.
package oracle

import (
	"crypto/ed25519"
	"encoding/binary"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// SignatureSize is the expected ed25519 signature length in bytes.
const SignatureSize = ed25519.SignatureSize

// Verifier validates an oracle-signed score message.
type Verifier interface {
	// Verify checks the signature over the canonical (wallet, score,
	// timestamp) message. A nil return means the message is authentic.
	Verify(wallet string, score uint8, timestamp int64, signature []byte) error
}

// ScoreMessage builds the canonical byte encoding the oracle signs:
// 32-byte wallet pubkey, score byte, timestamp as big-endian int64.
func ScoreMessage(wallet string, score uint8, timestamp int64) ([]byte, error) {
	walletBytes, err := base58.Decode(wallet)
	if err != nil {
		return nil, fmt.Errorf("decode wallet %q: %w", wallet, err)
	}
	if len(walletBytes) != 32 {
		return nil, fmt.Errorf("wallet %q: expected 32 bytes, got %d", wallet, len(walletBytes))
	}

	msg := make([]byte, 0, 32+1+8)
	msg = append(msg, walletBytes...)
	msg = append(msg, score)
	msg = binary.BigEndian.AppendUint64(msg, uint64(timestamp))
	return msg, nil
}

// Ed25519Verifier verifies scores against a fixed oracle public key.
type Ed25519Verifier struct {
	pub ed25519.PublicKey
}

// NewEd25519Verifier creates a verifier from a base58-encoded oracle
// public key. The key must be a valid point on the edwards25519 curve.
func NewEd25519Verifier(pubBase58 string) (*Ed25519Verifier, error) {
	pub, err := base58.Decode(pubBase58)
	if err != nil {
		return nil, fmt.Errorf("decode oracle pubkey: %w", err)
	}
	if !isOnCurve(pub) {
		return nil, fmt.Errorf("oracle pubkey %q is not a valid curve point", pubBase58)
	}
	return &Ed25519Verifier{pub: ed25519.PublicKey(pub)}, nil
}

// Compile-time interface check.
var _ Verifier = (*Ed25519Verifier)(nil)

// Verify checks the ed25519 signature over the canonical score message.
func (v *Ed25519Verifier) Verify(wallet string, score uint8, timestamp int64, signature []byte) error {
	if len(signature) != SignatureSize {
		return fmt.Errorf("signature: expected %d bytes, got %d", SignatureSize, len(signature))
	}

	msg, err := ScoreMessage(wallet, score, timestamp)
	if err != nil {
		return err
	}

	if !ed25519.Verify(v.pub, msg, signature) {
		return fmt.Errorf("signature does not verify against oracle key")
	}
	return nil
}

// SignScore signs the canonical score message with an oracle private key.
// Used by the oracle simulator and tests.
func SignScore(priv ed25519.PrivateKey, wallet string, score uint8, timestamp int64) ([]byte, error) {
	msg, err := ScoreMessage(wallet, score, timestamp)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(priv, msg), nil
}

// isOnCurve reports whether the bytes decode to a point on edwards25519.
func isOnCurve(point []byte) bool {
	if len(point) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}
