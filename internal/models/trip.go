package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripPlanning   TripStatus = "planning"
	TripConfirmed  TripStatus = "confirmed"
	TripInProgress TripStatus = "in_progress"
	TripCompleted  TripStatus = "completed"
	TripCancelled  TripStatus = "cancelled"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripPlanning, TripConfirmed, TripInProgress, TripCompleted, TripCancelled:
		return true
	}
	return false
}

// DayPlan is one day of a trip itinerary
type DayPlan struct {
	Day        int      `json:"day"`
	Date       string   `json:"date,omitempty"`
	Title      string   `json:"title,omitempty"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes,omitempty"`
}

// Itinerary is the ordered list of day plans, stored as JSONB
type Itinerary []DayPlan

func (i Itinerary) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	return marshalJSONB([]DayPlan(i))
}
func (i *Itinerary) Scan(src any) error { return unmarshalJSONB(src, i) }

// Trip represents a travel trip created by a user
type Trip struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"userId" db:"user_id"`
	Destination   string     `json:"destination" db:"destination"`
	Country       string     `json:"country" db:"country"`
	StartDate     time.Time  `json:"startDate" db:"start_date"`
	EndDate       time.Time  `json:"endDate" db:"end_date"`
	Budget        float64    `json:"budget" db:"budget"`
	Status        TripStatus `json:"status" db:"status"`
	Itinerary     Itinerary  `json:"itinerary" db:"itinerary"`
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	AISuggestions JSONMap    `json:"aiSuggestions,omitempty" db:"ai_suggestions"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// DestinationCount is one entry of the top destinations ranking
type DestinationCount struct {
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

// TripStats aggregates all trips owned by a user
type TripStats struct {
	TotalTrips       int                `json:"totalTrips"`
	CountriesVisited int                `json:"countriesVisited"`
	CompletedTrips   int                `json:"completedTrips"`
	UpcomingTrips    int                `json:"upcomingTrips"`
	TotalBudget      float64            `json:"totalBudget"`
	TopDestinations  []DestinationCount `json:"topDestinations"`
}
