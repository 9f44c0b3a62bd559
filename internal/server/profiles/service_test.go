package profiles

import (
	"context"
	"crypto/rand"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/common"
	"github.com/dmitrijs2005/voyagegate/internal/cryptox"
	"github.com/dmitrijs2005/voyagegate/internal/identity"
	"github.com/dmitrijs2005/voyagegate/internal/server/auth"
	"github.com/dmitrijs2005/voyagegate/internal/server/config"
	"github.com/dmitrijs2005/voyagegate/internal/server/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExchangeService(t *testing.T) (*Service, *MemoryRepository, []byte, *config.Config) {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		ReplayWindow:                300 * time.Second,
	}

	repo := NewMemoryRepository()
	guard := replay.NewGuard(cfg.ReplayWindow, nil)

	return NewService(repo, guard, key, cfg), repo, key, cfg
}

func freshPayload(now time.Time) identity.Payload {
	return identity.Payload{
		ProfileID: "user_12345",
		PanLast4:  "9876",
		PanHash:   "e3b0c44298fc1c14",
		Language:  "en",
		Nickname:  "Jaison",
		Nonce:     fmt.Sprintf("%d_randomsalt", now.Unix()),
	}
}

func TestExchange_Success(t *testing.T) {
	svc, repo, key, cfg := newExchangeService(t)
	now := time.Now()
	ctx := context.Background()

	envelope, err := cryptox.Seal(key, freshPayload(now))
	require.NoError(t, err)

	result, err := svc.Exchange(ctx, envelope, now)
	require.NoError(t, err)

	// credential binds the profile identity
	pid, err := auth.ProfileIDFromToken(result.AccessToken, []byte(cfg.JWTSecret), now)
	require.NoError(t, err)
	assert.Equal(t, "user_12345", pid)

	// profile was persisted
	profile, err := repo.GetByProfileID(ctx, "user_12345")
	require.NoError(t, err)
	assert.Equal(t, "9876", profile.PanLast4)
	assert.Equal(t, "Jaison", profile.Nickname)

	assert.Equal(t, "user_12345", result.Payload.ProfileID)
}

func TestExchange_ReExchangeKeepsPanFields(t *testing.T) {
	svc, repo, key, _ := newExchangeService(t)
	now := time.Now()
	ctx := context.Background()

	first := freshPayload(now)
	envelope, err := cryptox.Seal(key, first)
	require.NoError(t, err)
	_, err = svc.Exchange(ctx, envelope, now)
	require.NoError(t, err)

	// second exchange tries to change every field
	second := freshPayload(now)
	second.PanLast4 = "0000"
	second.PanHash = "different"
	second.Language = "lv"
	second.Nickname = "J"
	envelope, err = cryptox.Seal(key, second)
	require.NoError(t, err)
	_, err = svc.Exchange(ctx, envelope, now)
	require.NoError(t, err)

	profile, err := repo.GetByProfileID(ctx, "user_12345")
	require.NoError(t, err)
	// identity binding is immutable, display fields follow
	assert.Equal(t, "9876", profile.PanLast4)
	assert.Equal(t, "e3b0c44298fc1c14", profile.PanHash)
	assert.Equal(t, "lv", profile.Language)
	assert.Equal(t, "J", profile.Nickname)
	assert.Equal(t, int64(1), profile.ID)
}

func TestExchange_GarbageEnvelope(t *testing.T) {
	svc, _, _, _ := newExchangeService(t)

	_, err := svc.Exchange(context.Background(), "not-a-valid-envelope", time.Now())
	assert.ErrorIs(t, err, common.ErrEnvelope)
}

func TestExchange_MissingRequiredFields(t *testing.T) {
	svc, _, key, _ := newExchangeService(t)
	now := time.Now()

	payload := freshPayload(now)
	payload.ProfileID = ""
	envelope, err := cryptox.Seal(key, payload)
	require.NoError(t, err)

	_, err = svc.Exchange(context.Background(), envelope, now)
	// payload problems are indistinguishable from decryption failures
	assert.ErrorIs(t, err, common.ErrEnvelope)
}

func TestExchange_StaleNonce(t *testing.T) {
	svc, _, key, _ := newExchangeService(t)
	now := time.Now()

	payload := freshPayload(now.Add(-301 * time.Second))
	envelope, err := cryptox.Seal(key, payload)
	require.NoError(t, err)

	_, err = svc.Exchange(context.Background(), envelope, now)
	assert.ErrorIs(t, err, common.ErrNonceExpired)
}

func TestUpdateLanguage(t *testing.T) {
	svc, repo, key, _ := newExchangeService(t)
	now := time.Now()
	ctx := context.Background()

	envelope, err := cryptox.Seal(key, freshPayload(now))
	require.NoError(t, err)
	_, err = svc.Exchange(ctx, envelope, now)
	require.NoError(t, err)

	lv := "lv"
	require.NoError(t, svc.UpdateLanguage(ctx, "user_12345", &lv))

	profile, err := repo.GetByProfileID(ctx, "user_12345")
	require.NoError(t, err)
	assert.Equal(t, "lv", profile.Language)

	// nil language is a no-op
	require.NoError(t, svc.UpdateLanguage(ctx, "user_12345", nil))

	// unknown profile surfaces not found
	err = svc.UpdateLanguage(ctx, "missing", &lv)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
