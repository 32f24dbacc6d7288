package dto

import "TRAVELPLANNER_BACK-END/internal/models"

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is a partial update of the caller's profile
type UpdateProfileRequest struct {
	Name        *string             `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone       *string             `json:"phone,omitempty" validate:"omitempty,max=30"`
	Preferences *models.Preferences `json:"preferences,omitempty"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
