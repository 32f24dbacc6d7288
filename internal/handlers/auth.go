package handlers

import (
	"log/slog"
	"net/http"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/middleware"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// AuthHandler handles authentication related requests
type AuthHandler struct {
	auth   *services.AuthService
	users  *services.UserService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth *services.AuthService, users *services.UserService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, logger: logger}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with email, password and name
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} utils.Envelope{data=dto.AuthResponse} "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	res, err := h.auth.Register(r.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.AuthResponse{User: res.User, Token: res.Token}, "User registered successfully")
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "User login credentials"
// @Success 200 {object} utils.Envelope{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.AuthResponse{User: res.User, Token: res.Token}, "Login successful")
}

// Logout revokes the presented token
// @Summary Logout
// @Tags authentication
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, r, h.logger, apperr.Unauthorized("Invalid user context"))
		return
	}
	if err := h.auth.Logout(r.Context(), claims); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Logged out")
}

// GetProfile returns the current user's profile
// @Summary Get user profile
// @Tags authentication
// @Produce json
// @Success 200 {object} utils.Envelope{data=models.User}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, user, "")
}

// UpdateProfile merges name, phone and preferences into the current user
// @Summary Update user profile
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.Envelope{data=models.User}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	user, err := h.users.Update(r.Context(), userID, services.UserPatch{
		Name:        req.Name,
		Phone:       req.Phone,
		Preferences: req.Preferences,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, user, "Profile updated")
}
