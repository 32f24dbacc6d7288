package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingType string

const (
	BookingHotel      BookingType = "hotel"
	BookingFlight     BookingType = "flight"
	BookingRestaurant BookingType = "restaurant"
	BookingActivity   BookingType = "activity"
)

func (t BookingType) Valid() bool {
	switch t {
	case BookingHotel, BookingFlight, BookingRestaurant, BookingActivity:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a priced reservation attached to a trip
type Booking struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	TripID    uuid.UUID     `json:"tripId" db:"trip_id"`
	Type      BookingType   `json:"type" db:"type"`
	Title     string        `json:"title" db:"title"`
	Price     float64       `json:"price" db:"price"`
	StartDate time.Time     `json:"startDate" db:"start_date"`
	EndDate   *time.Time    `json:"endDate,omitempty" db:"end_date"`
	Status    BookingStatus `json:"status" db:"status"`
	Details   JSONMap       `json:"details,omitempty" db:"details"`
	Notes     *string       `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	// OwnerID is the owning trip's user, filled by lookups
	OwnerID uuid.UUID `json:"-" db:"-"`
}

// GroupSummary is a grouped count and sum, keyed by booking type or expense category
type GroupSummary struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}
