// Package replay validates the freshness nonce embedded in a decrypted
// launch payload.
//
// The freshness window alone does not prevent re-submission of a captured
// envelope that is still fresh; for that the guard accepts an optional
// NonceStore that records consumed nonces for the remainder of their
// window. The store is disabled by default.
package replay

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/common"
)

// DefaultWindow bounds how stale a launch nonce may be.
const DefaultWindow = 300 * time.Second

// NonceStore records consumed nonces. Consume returns false when the
// nonce was seen before within its window.
type NonceStore interface {
	Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}

// Guard checks launch nonces of the form "<unix_seconds>_<suffix>".
type Guard struct {
	window time.Duration
	store  NonceStore
}

// NewGuard builds a guard with the given staleness window. store may be
// nil, in which case only freshness is checked.
func NewGuard(window time.Duration, store NonceStore) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Guard{window: window, store: store}
}

// Check validates a nonce at the given instant. A malformed nonce, a
// timestamp older than the window, or a previously consumed nonce all
// fail with common.ErrNonceExpired; callers must not reveal which.
// Future timestamps are accepted: the guard bounds staleness, not clock
// skew in the other direction.
func (g *Guard) Check(ctx context.Context, nonce string, now time.Time) error {
	ts, err := parseTimestamp(nonce)
	if err != nil {
		return err
	}

	age := float64(now.Unix()) - ts
	if age > g.window.Seconds() {
		return fmt.Errorf("%w: nonce is %.0fs old", common.ErrNonceExpired, age)
	}

	if g.store == nil {
		return nil
	}

	// keep the record only while the nonce could still pass the
	// freshness check
	ttl := g.window
	if age > 0 {
		ttl -= time.Duration(age * float64(time.Second))
	}

	fresh, err := g.store.Consume(ctx, nonce, ttl)
	if err != nil {
		return fmt.Errorf("nonce store: %w", err)
	}
	if !fresh {
		return fmt.Errorf("%w: nonce already consumed", common.ErrNonceExpired)
	}

	return nil
}

// parseTimestamp extracts the leading seconds segment before the first
// "_". The original emitter writes integer seconds but fractional values
// are tolerated. Malformed input fails closed.
func parseTimestamp(nonce string) (float64, error) {
	seg, _, _ := strings.Cut(nonce, "_")
	ts, err := strconv.ParseFloat(seg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed nonce", common.ErrNonceExpired)
	}
	return ts, nil
}
