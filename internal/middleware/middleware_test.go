package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/auth"
	"TRAVELPLANNER_BACK-END/internal/config"
)

var testLogger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

func protected(t *testing.T) (http.Handler, *auth.TokenManager, *auth.MemoryRevocationStore) {
	t.Helper()
	tokens := auth.NewTokenManager(config.JWTConfig{Secret: "s", Issuer: "travelplanner", AccessTokenTTL: time.Hour})
	revoked := auth.NewMemoryRevocationStore()
	h := Authenticate(tokens, revoked, testLogger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Write([]byte(id.String()))
	}))
	return h, tokens, revoked
}

func call(h http.Handler, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	h, tokens, revoked := protected(t)
	userID := uuid.New()
	token, claims, err := tokens.Generate(userID, "a@b.com")
	require.NoError(t, err)

	rec := call(h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())

	for _, authz := range []string{"", "Token " + token, "Bearer ", "Bearer garbage"} {
		rec := call(h, authz)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, authz)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}

	require.NoError(t, revoked.Revoke(context.Background(), claims.ID, time.Minute))
	assert.Equal(t, http.StatusUnauthorized, call(h, "Bearer "+token).Code)
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	hit := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:1000"), "limits are per IP")
}

func TestLimiterSweep(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	now := time.Now()
	rl.allow("a", now.Add(-time.Hour))
	rl.allow("b", now)
	rl.sweep(now)
	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")
}
