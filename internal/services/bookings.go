package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/models"
)

type CreateBookingInput struct {
	TripID    uuid.UUID
	Type      models.BookingType
	Title     string
	Price     float64
	StartDate time.Time
	EndDate   *time.Time
	Details   models.JSONMap
	Notes     *string
}

type BookingPatch struct {
	Type      *models.BookingType
	Title     *string
	Price     *float64
	StartDate *time.Time
	EndDate   *time.Time
	Status    *models.BookingStatus
	Details   *models.JSONMap
	Notes     *string
}

type BookingService struct {
	trips    TripStore
	bookings BookingStore
	now      func() time.Time
}

func NewBookingService(trips TripStore, bookings BookingStore) *BookingService {
	return &BookingService{trips: trips, bookings: bookings, now: time.Now}
}

// Create always stores the booking as pending; confirmation only comes from payment.
func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*models.Booking, error) {
	if !in.Type.Valid() {
		return nil, apperr.Validation("invalid booking type")
	}
	if in.Price < 0 {
		return nil, apperr.Validation("price must not be negative")
	}
	if _, err := ownedTrip(ctx, s.trips, in.TripID, userID); err != nil {
		return nil, err
	}

	now := s.now()
	b := &models.Booking{
		ID:        uuid.New(),
		TripID:    in.TripID,
		Type:      in.Type,
		Title:     strings.TrimSpace(in.Title),
		Price:     in.Price,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    models.BookingPending,
		Details:   in.Details,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
		OwnerID:   userID,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, storeErr(err, "booking")
	}
	return b, nil
}

func (s *BookingService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]models.Booking, error) {
	if _, err := ownedTrip(ctx, s.trips, tripID, userID); err != nil {
		return nil, err
	}
	list, err := s.bookings.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, storeErr(err, "bookings")
	}
	return list, nil
}

func (s *BookingService) ListByTripAndType(ctx context.Context, userID, tripID uuid.UUID, typ models.BookingType) ([]models.Booking, error) {
	if !typ.Valid() {
		return nil, apperr.Validation("invalid booking type")
	}
	if _, err := ownedTrip(ctx, s.trips, tripID, userID); err != nil {
		return nil, err
	}
	list, err := s.bookings.ListByTripAndType(ctx, tripID, typ)
	if err != nil {
		return nil, storeErr(err, "bookings")
	}
	return list, nil
}

// Get hides bookings of other users behind NotFound.
func (s *BookingService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "booking")
	}
	if b.OwnerID != userID {
		return nil, apperr.NotFound("booking not found")
	}
	return b, nil
}

func (s *BookingService) Update(ctx context.Context, userID, id uuid.UUID, p BookingPatch) (*models.Booking, error) {
	b, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if p.Type != nil {
		if !p.Type.Valid() {
			return nil, apperr.Validation("invalid booking type")
		}
		b.Type = *p.Type
	}
	if p.Title != nil {
		b.Title = strings.TrimSpace(*p.Title)
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return nil, apperr.Validation("price must not be negative")
		}
		b.Price = *p.Price
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = p.EndDate
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, apperr.Validation("invalid booking status")
		}
		b.Status = *p.Status
	}
	if p.Details != nil {
		b.Details = *p.Details
	}
	if p.Notes != nil {
		b.Notes = p.Notes
	}
	b.UpdatedAt = s.now()

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, storeErr(err, "booking")
	}
	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return storeErr(err, "booking")
	}
	return nil
}

func (s *BookingService) Total(ctx context.Context, userID, tripID uuid.UUID) (float64, error) {
	if _, err := ownedTrip(ctx, s.trips, tripID, userID); err != nil {
		return 0, err
	}
	total, err := s.bookings.TotalByTrip(ctx, tripID)
	if err != nil {
		return 0, storeErr(err, "bookings")
	}
	return total.InexactFloat64(), nil
}

func (s *BookingService) Summary(ctx context.Context, userID, tripID uuid.UUID) ([]models.GroupSummary, error) {
	if _, err := ownedTrip(ctx, s.trips, tripID, userID); err != nil {
		return nil, err
	}
	summary, err := s.bookings.SummaryByType(ctx, tripID)
	if err != nil {
		return nil, storeErr(err, "bookings")
	}
	return summary, nil
}
