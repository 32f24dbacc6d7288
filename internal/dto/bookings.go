package dto

import "TRAVELPLANNER_BACK-END/internal/models"

// CreateBookingRequest carries no status: new bookings always start pending
type CreateBookingRequest struct {
	TripID    string         `json:"tripId" validate:"required,uuid"`
	Type      string         `json:"type" validate:"required,oneof=hotel flight restaurant activity"`
	Title     string         `json:"title" validate:"required,max=200"`
	Price     float64        `json:"price" validate:"gte=0"`
	StartDate string         `json:"startDate" validate:"required"`
	EndDate   *string        `json:"endDate,omitempty"`
	Details   models.JSONMap `json:"details,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
}

type UpdateBookingRequest struct {
	Type      *string         `json:"type,omitempty" validate:"omitempty,oneof=hotel flight restaurant activity"`
	Title     *string         `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Price     *float64        `json:"price,omitempty" validate:"omitempty,gte=0"`
	StartDate *string         `json:"startDate,omitempty"`
	EndDate   *string         `json:"endDate,omitempty"`
	Status    *string         `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Details   *models.JSONMap `json:"details,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

type BookingSummaryItem struct {
	Type  string  `json:"type"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}
