package dto

import "TRAVELPLANNER_BACK-END/internal/models"

// CreateTripRequest represents the payload to create a trip. Dates are YYYY-MM-DD or RFC3339.
type CreateTripRequest struct {
	Destination   string           `json:"destination" validate:"required,max=200"`
	Country       string           `json:"country" validate:"max=100"`
	StartDate     string           `json:"startDate" validate:"required"`
	EndDate       string           `json:"endDate" validate:"required"`
	Budget        float64          `json:"budget" validate:"gte=0"`
	Status        string           `json:"status,omitempty" validate:"omitempty,oneof=planning confirmed in_progress completed cancelled"`
	Itinerary     models.Itinerary `json:"itinerary,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	AISuggestions models.JSONMap   `json:"aiSuggestions,omitempty"`
}

// UpdateTripRequest is a partial update; omitted fields are kept
type UpdateTripRequest struct {
	Destination   *string           `json:"destination,omitempty" validate:"omitempty,min=1,max=200"`
	Country       *string           `json:"country,omitempty" validate:"omitempty,max=100"`
	StartDate     *string           `json:"startDate,omitempty"`
	EndDate       *string           `json:"endDate,omitempty"`
	Budget        *float64          `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Status        *string           `json:"status,omitempty" validate:"omitempty,oneof=planning confirmed in_progress completed cancelled"`
	Itinerary     *models.Itinerary `json:"itinerary,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	AISuggestions *models.JSONMap   `json:"aiSuggestions,omitempty"`
}

// ArchiveResponse is the stored export location
type ArchiveResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
