package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/config"
)

func newManager(secret string) *TokenManager {
	return NewTokenManager(config.JWTConfig{Secret: secret, Issuer: "travelplanner", AccessTokenTTL: time.Hour})
}

func TestGenerateAndValidate(t *testing.T) {
	m := newManager("s3cret")
	userID := uuid.New()

	token, issued, err := m.Generate(userID, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newManager("one").Generate(uuid.New(), "a@b.com")
	require.NoError(t, err)

	_, err = newManager("two").Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	m := newManager("s3cret")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Generate(uuid.New(), "a@b.com")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	other := NewTokenManager(config.JWTConfig{Secret: "s3cret", Issuer: "someone-else", AccessTokenTTL: time.Hour})
	token, _, err := other.Generate(uuid.New(), "a@b.com")
	require.NoError(t, err)

	_, err = newManager("s3cret").Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	_, err := newManager("s3cret").Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
