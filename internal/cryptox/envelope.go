// Package cryptox implements the symmetric envelope used to hand an
// identity payload from the client party to the app party.
//
// Wire form: hex(nonce || ciphertext), where nonce is 12 random bytes and
// the ciphertext carries the GCM authentication tag. The ordering is a
// strict contract between Seal and Open.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/voyagegate/internal/common"
)

// NonceSize is the GCM nonce length in bytes.
const NonceSize = 12

// Seal serializes v to JSON and encrypts it under key with AES-GCM.
//
// The key must be a valid AES key length (32 bytes for AES-256). A fresh
// random nonce is drawn per call; reusing one under the same key would be a
// security violation, so callers must never cache envelopes for re-sealing.
func Seal(key []byte, v any) (string, error) {

	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("envelope marshal: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("envelope nonce: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("envelope cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("envelope gcm: %w", err)
	}

	ciphertext := aesgcm.Seal(nil, nonce, plaintext, nil)

	return hex.EncodeToString(nonce) + hex.EncodeToString(ciphertext), nil
}

// Open decrypts an envelope produced by Seal and unmarshals the plaintext
// into v. Every failure mode (bad hex, short blob, failed authentication
// tag, malformed JSON) collapses into common.ErrEnvelope so that callers
// cannot be used as a decryption oracle. The wrapped cause stays available
// for logs via errors.Unwrap.
func Open(key []byte, envelope string, v any) error {
	blob, err := hex.DecodeString(envelope)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrEnvelope, err)
	}

	if len(blob) < NonceSize {
		return fmt.Errorf("%w: blob too short", common.ErrEnvelope)
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrEnvelope, err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrEnvelope, err)
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrEnvelope, err)
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrEnvelope, err)
	}

	return nil
}

// ParseKey decodes the hex-encoded pre-shared envelope key and checks its
// length. Both parties call this at startup; a bad key is fatal there.
func ParseKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("shared key is not valid hex: %w", err)
	}
	if len(key) != common.SharedKeySize {
		return nil, fmt.Errorf("shared key must be %d bytes, got %d", common.SharedKeySize, len(key))
	}
	return key, nil
}
