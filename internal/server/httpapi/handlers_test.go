package httpapi

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/cryptox"
	"github.com/dmitrijs2005/voyagegate/internal/identity"
	"github.com/dmitrijs2005/voyagegate/internal/logging"
	"github.com/dmitrijs2005/voyagegate/internal/server/auth"
	"github.com/dmitrijs2005/voyagegate/internal/server/config"
	"github.com/dmitrijs2005/voyagegate/internal/server/profiles"
	"github.com/dmitrijs2005/voyagegate/internal/server/replay"
	"github.com/dmitrijs2005/voyagegate/internal/server/shared/db"
	"github.com/dmitrijs2005/voyagegate/internal/server/trips"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router    http.Handler
	sharedKey []byte
	cfg       *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sharedKey := make([]byte, 32)
	_, err := rand.Read(sharedKey)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		ReplayWindow:                300 * time.Second,
	}

	manager := db.NewInMemoryRepositoryManager()
	guard := replay.NewGuard(cfg.ReplayWindow, nil)

	ps := profiles.NewService(manager.Profiles(), guard, sharedKey, cfg)
	ts := trips.NewService(manager.Trips())

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	registry := prometheus.NewRegistry()
	handler := NewHandler(ps, ts, logger, NewMetrics(registry))

	return &testEnv{
		router:    NewRouter(handler, []byte(cfg.JWTSecret), logger, registry),
		sharedKey: sharedKey,
		cfg:       cfg,
	}
}

func (e *testEnv) mintEnvelope(t *testing.T, profileID string, nonceAge time.Duration) string {
	t.Helper()

	payload := identity.Payload{
		ProfileID: profileID,
		PanLast4:  "9876",
		PanHash:   "e3b0c44298fc1c149afbf4c8996fb924",
		Language:  "en",
		Nickname:  "Jaison",
		Nonce:     fmt.Sprintf("%d_randomsalt", time.Now().Add(-nonceAge).Unix()),
	}

	envelope, err := cryptox.Seal(e.sharedKey, payload)
	require.NoError(t, err)
	return envelope
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (e *testEnv) exchange(t *testing.T, profileID string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/exchange", "", map[string]string{
		"token": e.mintEnvelope(t, profileID, 0),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[exchangeResponse](t, rec)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestEndToEnd_ExchangeChatPoll(t *testing.T) {
	env := newTestEnv(t)

	// exchange a fresh launch token for a credential
	rec := env.do(t, http.MethodPost, "/auth/exchange", "", map[string]string{
		"token": env.mintEnvelope(t, "u1", 0),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	exch := decodeBody[exchangeResponse](t, rec)
	assert.Equal(t, "u1", exch.Profile.ProfileID)
	assert.Equal(t, "Jaison", exch.Profile.Nickname)

	// credential is bound to the profile identity
	pid, err := auth.ProfileIDFromToken(exch.AccessToken, []byte(env.cfg.JWTSecret), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "u1", pid)

	// plan a trip
	rec = env.do(t, http.MethodPost, "/chat", exch.AccessToken, map[string]any{
		"origin": "London", "destination": "Tokyo", "travel_date": "2023-12-01", "pax": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	chat := decodeBody[chatResponse](t, rec)
	assert.Equal(t, int64(1), chat.TripPlanID)
	assert.Equal(t, "Request received", chat.Message)

	// poll it
	rec = env.do(t, http.MethodGet, "/chat/1", exch.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	status := decodeBody[chatStatusResponse](t, rec)
	assert.Equal(t, int64(1), status.TripPlanID)
	assert.Equal(t, "processing", status.Status)
	assert.Contains(t, status.Response, "Tokyo")
	assert.Contains(t, status.Response, "1")
}

func TestExchange_StaleNonceIsGeneric400(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/exchange", "", map[string]string{
		"token": env.mintEnvelope(t, "u1", 301*time.Second),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[map[string]string](t, rec)
	assert.Equal(t, genericExchangeError, resp["detail"])
}

func TestExchange_FailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)

	valid := env.mintEnvelope(t, "u1", 0)
	tampered := valid[:len(valid)-2] + "00"
	if tampered == valid {
		tampered = valid[:len(valid)-2] + "11"
	}

	bodies := []map[string]string{
		{"token": "zzzz"},                             // not hex
		{"token": tampered},                           // failed auth tag
		{"token": env.mintEnvelope(t, "", 0)},         // missing profile_id
		{"token": env.mintEnvelope(t, "u1", time.Hour)}, // stale nonce
	}

	for i, body := range bodies {
		rec := env.do(t, http.MethodPost, "/auth/exchange", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "case %d", i)
		resp := decodeBody[map[string]string](t, rec)
		assert.Equal(t, genericExchangeError, resp["detail"], "case %d", i)
	}
}

func TestChat_UnknownSessionIs404(t *testing.T) {
	env := newTestEnv(t)
	token := env.exchange(t, "u1")

	rec := env.do(t, http.MethodGet, "/chat/999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	missing := int64(999)
	rec = env.do(t, http.MethodPost, "/chat", token, map[string]any{
		"origin": "London", "destination": "Tokyo", "travel_date": "2023-12-01", "pax": 2,
		"tripplanid": missing,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat_ForeignSessionIs404(t *testing.T) {
	env := newTestEnv(t)
	owner := env.exchange(t, "owner")
	intruder := env.exchange(t, "intruder")

	rec := env.do(t, http.MethodPost, "/chat", owner, map[string]any{
		"origin": "London", "destination": "Tokyo", "travel_date": "2023-12-01", "pax": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[chatResponse](t, rec)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/chat/%d", created.TripPlanID), intruder, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat_UpdateExistingSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.exchange(t, "u1")

	rec := env.do(t, http.MethodPost, "/chat", token, map[string]any{
		"origin": "London", "destination": "Tokyo", "travel_date": "2023-12-01", "pax": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[chatResponse](t, rec)

	rec = env.do(t, http.MethodPost, "/chat", token, map[string]any{
		"origin": "London", "destination": "Osaka", "travel_date": "2023-12-01", "pax": 2,
		"tripplanid": created.TripPlanID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/chat/%d", created.TripPlanID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[chatStatusResponse](t, rec)
	assert.Equal(t, "Updated plan for Osaka based on new info.", status.Response)
}

func TestChat_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	token := env.exchange(t, "u1")

	bodies := []map[string]any{
		{"destination": "Tokyo", "travel_date": "2023-12-01", "pax": 2},
		{"origin": "London", "travel_date": "2023-12-01", "pax": 2},
		{"origin": "London", "destination": "Tokyo", "pax": 2},
		{"origin": "London", "destination": "Tokyo", "travel_date": "2023-12-01", "pax": 0},
		{"origin": "London", "destination": "Tokyo", "travel_date": "2023-12-01", "pax": -1},
	}

	for i, body := range bodies {
		rec := env.do(t, http.MethodPost, "/chat", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "case %d", i)
	}
}

func TestBearerGate(t *testing.T) {
	env := newTestEnv(t)

	// no credential
	rec := env.do(t, http.MethodPost, "/chat", "", map[string]any{
		"origin": "London", "destination": "Tokyo", "travel_date": "2023-12-01", "pax": 2,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage credential
	rec = env.do(t, http.MethodGet, "/chat/1", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// expired credential
	expired, err := auth.GenerateToken("u1", []byte(env.cfg.JWTSecret), time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	rec = env.do(t, http.MethodGet, "/chat/1", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// credential signed with a different secret
	foreign, err := auth.GenerateToken("u1", []byte("other-secret"), time.Hour, time.Now())
	require.NoError(t, err)
	rec = env.do(t, http.MethodPost, "/profile", foreign, map[string]any{"language": "lv"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileUpdate(t *testing.T) {
	env := newTestEnv(t)
	token := env.exchange(t, "u1")

	rec := env.do(t, http.MethodPost, "/profile", token, map[string]any{"language": "lv"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[profileUpdateResponse](t, rec)
	assert.Equal(t, "updated", resp.Status)

	// empty body is accepted as a no-op update
	rec = env.do(t, http.MethodPost, "/profile", token, map[string]any{})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReExchangeUpdatesDisplayFields(t *testing.T) {
	env := newTestEnv(t)

	_ = env.exchange(t, "u1")
	token := env.exchange(t, "u1")

	// both exchanges succeeded against the same profile row; the second
	// credential still works
	rec := env.do(t, http.MethodPost, "/chat", token, map[string]any{
		"origin": "London", "destination": "Tokyo", "travel_date": "2023-12-01", "pax": 2,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
