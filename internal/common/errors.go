// Package common defines shared constants and sentinel errors used across
// the client and app parties of voyagegate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")

	// Envelope errors. Every decode failure collapses into ErrEnvelope so
	// that callers cannot tell a hex error from a failed auth tag.
	ErrEnvelope = errors.New("invalid envelope")

	// Replay guard errors. A stale, malformed or already-consumed launch
	// nonce all map here.
	ErrNonceExpired = errors.New("nonce expired")
)
