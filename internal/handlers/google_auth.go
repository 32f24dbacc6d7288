package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

const oauthStateCookie = "oauth_state"

// GoogleAuthHandler handles Google OAuth authentication
type GoogleAuthHandler struct {
	oauth2Config *oauth2.Config
	auth         *services.AuthService
	frontendURL  string
	logger       *slog.Logger
	// fetchProfile is swapped in tests
	fetchProfile func(ctx context.Context, token *oauth2.Token) (*services.GoogleProfile, error)
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(cfg config.GoogleOAuthConfig, frontendURL string, auth *services.AuthService, logger *slog.Logger) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleAuthHandler{
		oauth2Config: oauth2Config,
		auth:         auth,
		frontendURL:  strings.TrimRight(frontendURL, "/"),
		logger:       logger,
		fetchProfile: fetchGoogleProfile,
	}
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Returns the Google consent URL and sets a state cookie
// @Tags authentication
// @Produce json
// @Success 200 {object} utils.Envelope{data=dto.GoogleLoginResponse} "Google OAuth URL"
// @Router /auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
	utils.WriteSuccess(w, http.StatusOK, dto.GoogleLoginResponse{AuthURL: authURL, State: state}, "")
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Exchanges the code, signs the user in and redirects to the frontend with a token
// @Tags authentication
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State parameter for CSRF protection"
// @Success 302 "Redirect to frontend"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid authorization code"
// @Router /auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || state == "" || cookie.Value != state {
		respondError(w, r, h.logger, apperr.Validation("invalid oauth state"))
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/auth/google", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, r, h.logger, apperr.Validation("Authorization code is required"))
		return
	}

	token, err := h.oauth2Config.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Warn("google code exchange failed", "error", err)
		respondError(w, r, h.logger, apperr.Unauthorized("Invalid authorization code"))
		return
	}

	profile, err := h.fetchProfile(r.Context(), token)
	if err != nil {
		respondError(w, r, h.logger, apperr.Integration("Failed to get user info", err))
		return
	}

	res, err := h.auth.LoginWithGoogle(r.Context(), *profile)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	q := url.Values{}
	q.Set("token", res.Token)
	q.Set("userId", res.User.ID.String())
	q.Set("provider", "google")
	http.Redirect(w, r, h.frontendURL+"/auth/callback?"+q.Encode(), http.StatusFound)
}

// fetchGoogleProfile fetches user information from Google
func fetchGoogleProfile(ctx context.Context, token *oauth2.Token) (*services.GoogleProfile, error) {
	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}
	return &services.GoogleProfile{Email: userInfo.Email, Name: userInfo.Name, VerifiedEmail: verified}, nil
}
