package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/models"
)

type CreateTripInput struct {
	Destination   string
	Country       string
	StartDate     time.Time
	EndDate       time.Time
	Budget        float64
	Status        models.TripStatus
	Itinerary     models.Itinerary
	Notes         *string
	AISuggestions models.JSONMap
}

// TripPatch is a partial update; nil fields keep their stored value.
type TripPatch struct {
	Destination   *string
	Country       *string
	StartDate     *time.Time
	EndDate       *time.Time
	Budget        *float64
	Status        *models.TripStatus
	Itinerary     *models.Itinerary
	Notes         *string
	AISuggestions *models.JSONMap
}

const topDestinationCount = 3

type TripService struct {
	trips TripStore
	now   func() time.Time
}

func NewTripService(trips TripStore) *TripService {
	return &TripService{trips: trips, now: time.Now}
}

func (s *TripService) Create(ctx context.Context, userID uuid.UUID, in CreateTripInput) (*models.Trip, error) {
	if in.Budget < 0 {
		return nil, apperr.Validation("budget must not be negative")
	}
	status := in.Status
	if status == "" {
		status = models.TripPlanning
	}
	if !status.Valid() {
		return nil, apperr.Validation("invalid trip status")
	}

	now := s.now()
	t := &models.Trip{
		ID:            uuid.New(),
		UserID:        userID,
		Destination:   strings.TrimSpace(in.Destination),
		Country:       strings.TrimSpace(in.Country),
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Budget:        in.Budget,
		Status:        status,
		Itinerary:     in.Itinerary,
		Notes:         in.Notes,
		AISuggestions: in.AISuggestions,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if t.Itinerary == nil {
		t.Itinerary = models.Itinerary{}
	}
	if err := s.trips.Create(ctx, t); err != nil {
		return nil, storeErr(err, "trip")
	}
	return t, nil
}

func (s *TripService) List(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "trips")
	}
	return trips, nil
}

func (s *TripService) ListByStatus(ctx context.Context, userID uuid.UUID, status models.TripStatus) ([]models.Trip, error) {
	if !status.Valid() {
		return nil, apperr.Validation("invalid trip status")
	}
	trips, err := s.trips.ListByUserAndStatus(ctx, userID, status)
	if err != nil {
		return nil, storeErr(err, "trips")
	}
	return trips, nil
}

func (s *TripService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Trip, error) {
	return ownedTrip(ctx, s.trips, id, userID)
}

func (s *TripService) Update(ctx context.Context, userID, id uuid.UUID, p TripPatch) (*models.Trip, error) {
	t, err := ownedTrip(ctx, s.trips, id, userID)
	if err != nil {
		return nil, err
	}

	if p.Destination != nil {
		t.Destination = strings.TrimSpace(*p.Destination)
	}
	if p.Country != nil {
		t.Country = strings.TrimSpace(*p.Country)
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Budget != nil {
		if *p.Budget < 0 {
			return nil, apperr.Validation("budget must not be negative")
		}
		t.Budget = *p.Budget
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, apperr.Validation("invalid trip status")
		}
		t.Status = *p.Status
	}
	if p.Itinerary != nil {
		t.Itinerary = *p.Itinerary
	}
	if p.Notes != nil {
		t.Notes = p.Notes
	}
	if p.AISuggestions != nil {
		t.AISuggestions = *p.AISuggestions
	}
	t.UpdatedAt = s.now()

	if err := s.trips.Update(ctx, t); err != nil {
		return nil, storeErr(err, "trip")
	}
	return t, nil
}

func (s *TripService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id, userID); err != nil {
		return storeErr(err, "trip")
	}
	return nil
}

func (s *TripService) Stats(ctx context.Context, userID uuid.UUID) (*models.TripStats, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "trips")
	}
	return computeTripStats(trips), nil
}

// computeTripStats ranks destinations by count; equal counts keep first-seen order.
func computeTripStats(trips []models.Trip) *models.TripStats {
	stats := &models.TripStats{TotalTrips: len(trips), TopDestinations: []models.DestinationCount{}}

	countries := make(map[string]struct{})
	counts := make(map[string]int)
	var order []string
	total := decimal.Zero

	for _, t := range trips {
		if t.Country != "" {
			countries[strings.ToLower(t.Country)] = struct{}{}
		}
		switch t.Status {
		case models.TripCompleted:
			stats.CompletedTrips++
		case models.TripConfirmed, models.TripInProgress:
			stats.UpcomingTrips++
		}
		total = total.Add(decimal.NewFromFloat(t.Budget))

		if _, seen := counts[t.Destination]; !seen {
			order = append(order, t.Destination)
		}
		counts[t.Destination]++
	}
	stats.CountriesVisited = len(countries)
	stats.TotalBudget = total.InexactFloat64()

	ranked := make([]models.DestinationCount, 0, len(order))
	for _, d := range order {
		ranked = append(ranked, models.DestinationCount{Destination: d, Count: counts[d]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > topDestinationCount {
		ranked = ranked[:topDestinationCount]
	}
	stats.TopDestinations = ranked
	return stats
}
