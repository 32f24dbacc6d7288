package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/auth"
	"TRAVELPLANNER_BACK-END/internal/config"
)

func newAuthService(t *testing.T) (*AuthService, *memUsers, *auth.TokenManager, *auth.MemoryRevocationStore) {
	t.Helper()
	users := newMemUsers()
	tokens := auth.NewTokenManager(config.JWTConfig{Secret: "test-secret", Issuer: "travelplanner", AccessTokenTTL: time.Hour})
	revoked := auth.NewMemoryRevocationStore()
	return NewAuthService(users, tokens, revoked, discardLogger), users, tokens, revoked
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, tokens, _ := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: " A@B.com ", Password: "secret1", Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", reg.User.Email)
	assert.NotEqual(t, "secret1", reg.User.PasswordHash)

	claims, err := tokens.Validate(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)

	login, err := svc.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "other", Name: "B"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin_FailuresShareOneMessage(t *testing.T) {
	svc, users, _, _ := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "a@b.com", "nope")
	_, unknown := svc.Login(ctx, "who@b.com", "secret1")

	reg.User.IsActive = false
	require.NoError(t, users.Update(ctx, reg.User))
	_, inactive := svc.Login(ctx, "a@b.com", "secret1")

	for _, err := range []error{wrongPassword, unknown, inactive} {
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
		assert.Equal(t, "invalid email or password", apperr.MessageOf(err))
	}
}

func TestLoginWithGoogle(t *testing.T) {
	svc, _, _, _ := newAuthService(t)
	ctx := context.Background()

	first, err := svc.LoginWithGoogle(ctx, GoogleProfile{Email: "g@example.com", Name: "G", VerifiedEmail: true})
	require.NoError(t, err)
	second, err := svc.LoginWithGoogle(ctx, GoogleProfile{Email: "g@example.com", VerifiedEmail: true})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	_, err = svc.Login(ctx, "g@example.com", "")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err), "google accounts have no password")

	_, err = svc.LoginWithGoogle(ctx, GoogleProfile{Email: "x@example.com"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _, tokens, revoked := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)
	claims, err := tokens.Validate(reg.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims))
	isRevoked, err := revoked.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, isRevoked)
}
