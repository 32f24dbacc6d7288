// Package services holds the business rules between handlers and storage.
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/repository"
)

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

type TripStore interface {
	Create(ctx context.Context, t *models.Trip) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error)
	ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status models.TripStatus) ([]models.Trip, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Trip, error)
	Update(ctx context.Context, t *models.Trip) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error)
	ListByTripAndType(ctx context.Context, tripID uuid.UUID, typ models.BookingType) ([]models.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	TotalByTrip(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, error)
	SummaryByType(ctx context.Context, tripID uuid.UUID) ([]models.GroupSummary, error)
}

type ExpenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	TotalByTrip(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, error)
	SummaryByCategory(ctx context.Context, tripID uuid.UUID) ([]models.GroupSummary, error)
}

type FavoriteStore interface {
	Create(ctx context.Context, f *models.Favorite) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Favorite, error)
	Exists(ctx context.Context, userID uuid.UUID, destination string) (bool, error)
	Update(ctx context.Context, f *models.Favorite) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// storeErr maps repository sentinels onto API error kinds.
func storeErr(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(what + " not found")
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Conflict(what + " already exists")
	default:
		return apperr.Internal("failed to access "+what, err)
	}
}

// ownedTrip loads a trip and fails with NotFound unless userID owns it.
func ownedTrip(ctx context.Context, trips TripStore, tripID, userID uuid.UUID) (*models.Trip, error) {
	t, err := trips.GetByID(ctx, tripID, userID)
	if err != nil {
		return nil, storeErr(err, "trip")
	}
	return t, nil
}
