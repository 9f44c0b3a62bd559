package replay

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonceAt(ts int64) string {
	return fmt.Sprintf("%d_randomsalt", ts)
}

func TestGuard_Freshness(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	g := NewGuard(300*time.Second, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		nonce   string
		wantErr bool
	}{
		{name: "fresh", nonce: nonceAt(now.Unix() - 10)},
		{name: "at window boundary", nonce: nonceAt(now.Unix() - 300)},
		{name: "just inside window", nonce: nonceAt(now.Unix() - 299)},
		{name: "just outside window", nonce: nonceAt(now.Unix() - 301), wantErr: true},
		{name: "future timestamp accepted", nonce: nonceAt(now.Unix() + 120)},
		{name: "fractional seconds", nonce: fmt.Sprintf("%d.5_x", now.Unix())},
		{name: "no suffix", nonce: fmt.Sprintf("%d", now.Unix())},
		{name: "empty", nonce: "", wantErr: true},
		{name: "not a number", nonce: "garbage_x", wantErr: true},
		{name: "suffix only", nonce: "_randomsalt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Check(ctx, tt.nonce, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrNonceExpired)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewGuard_DefaultWindow(t *testing.T) {
	g := NewGuard(0, nil)
	assert.Equal(t, DefaultWindow, g.window)
}

type fakeStore struct {
	seen map[string]bool
	ttl  time.Duration
	err  error
}

func (s *fakeStore) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.ttl = ttl
	if s.seen[nonce] {
		return false, nil
	}
	s.seen[nonce] = true
	return true, nil
}

func TestGuard_ConsumesNonceOnce(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	store := &fakeStore{seen: map[string]bool{}}
	g := NewGuard(300*time.Second, store)
	ctx := context.Background()

	n := nonceAt(now.Unix() - 100)

	require.NoError(t, g.Check(ctx, n, now))

	err := g.Check(ctx, n, now)
	assert.ErrorIs(t, err, common.ErrNonceExpired)

	// record lives only for the remainder of the window
	assert.InDelta(t, (200 * time.Second).Seconds(), store.ttl.Seconds(), 1)
}

func TestGuard_StoreFailureIsNotExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	store := &fakeStore{err: fmt.Errorf("redis down")}
	g := NewGuard(300*time.Second, store)

	err := g.Check(context.Background(), nonceAt(now.Unix()), now)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNonceExpired)
}
