package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/auth"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/repository"
)

// errBadCredentials is shared by every login failure so callers cannot probe for accounts.
var errBadCredentials = apperr.Unauthorized("invalid email or password")

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

// GoogleProfile is the subset of the Google userinfo response used for sign-in.
type GoogleProfile struct {
	Email         string
	Name          string
	VerifiedEmail bool
}

type AuthResult struct {
	User  *models.User
	Token string
}

type AuthService struct {
	users   UserStore
	tokens  *auth.TokenManager
	revoked auth.RevocationStore
	logger  *slog.Logger
	now     func() time.Time
}

func NewAuthService(users UserStore, tokens *auth.TokenManager, revoked auth.RevocationStore, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, revoked: revoked, logger: logger, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	now := s.now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Phone:        in.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, apperr.Internal("failed to create user", err)
	}

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, apperr.Internal("failed to load user", err)
	}
	if !user.IsActive || user.PasswordHash == "" {
		return nil, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errBadCredentials
	}

	return s.issue(user)
}

// LoginWithGoogle finds the user by verified email or creates a password-less account.
func (s *AuthService) LoginWithGoogle(ctx context.Context, p GoogleProfile) (*AuthResult, error) {
	if p.Email == "" || !p.VerifiedEmail {
		return nil, apperr.Unauthorized("google account email is not verified")
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(p.Email))
	switch {
	case err == nil:
		if !user.IsActive {
			return nil, apperr.Unauthorized("account is disabled")
		}
	case errors.Is(err, repository.ErrNotFound):
		now := s.now()
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = strings.Split(p.Email, "@")[0]
		}
		user = &models.User{
			ID:        uuid.New(),
			Email:     normalizeEmail(p.Email),
			Name:      name,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, storeErr(err, "user")
		}
		s.logger.Info("created user from google sign-in", "user_id", user.ID)
	default:
		return nil, apperr.Internal("failed to load user", err)
	}

	return s.issue(user)
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return apperr.Unauthorized("invalid token")
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperr.Internal("failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, _, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
