package dto

import "TRAVELPLANNER_BACK-END/internal/models"

type CreateFavoriteRequest struct {
	Destination   string         `json:"destination" validate:"required,max=200"`
	Country       string         `json:"country" validate:"max=100"`
	Description   *string        `json:"description,omitempty"`
	ImageURL      *string        `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Tags          []string       `json:"tags,omitempty"`
	AISuggestions models.JSONMap `json:"aiSuggestions,omitempty"`
}

type UpdateFavoriteRequest struct {
	Country       *string         `json:"country,omitempty" validate:"omitempty,max=100"`
	Description   *string         `json:"description,omitempty"`
	ImageURL      *string         `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Tags          *[]string       `json:"tags,omitempty"`
	AISuggestions *models.JSONMap `json:"aiSuggestions,omitempty"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}
