package routes

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"TRAVELPLANNER_BACK-END/internal/integrations/omise"
	"TRAVELPLANNER_BACK-END/internal/integrations/travel"
	"TRAVELPLANNER_BACK-END/internal/integrations/weather"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/repository"
)

// store is a single in-memory backend satisfying every repository interface
// the services depend on. Methods are grouped per resource by wrapper types.
type store struct {
	mu        sync.Mutex
	users     map[uuid.UUID]models.User
	trips     map[uuid.UUID]models.Trip
	bookings  map[uuid.UUID]models.Booking
	expenses  map[uuid.UUID]models.Expense
	favorites map[uuid.UUID]models.Favorite
}

func newStore() *store {
	return &store{
		users:     map[uuid.UUID]models.User{},
		trips:     map[uuid.UUID]models.Trip{},
		bookings:  map[uuid.UUID]models.Booking{},
		expenses:  map[uuid.UUID]models.Expense{},
		favorites: map[uuid.UUID]models.Favorite{},
	}
}

type userStore struct{ *store }

func (s userStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s userStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s userStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s userStore) Update(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	s.users[u.ID] = *u
	return nil
}

type tripStore struct{ *store }

func (s tripStore) Create(_ context.Context, t *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[t.ID] = *t
	return nil
}

func (s tripStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Trip
	for _, t := range s.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s tripStore) ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status models.TripStatus) ([]models.Trip, error) {
	all, _ := s.ListByUser(ctx, userID)
	var out []models.Trip
	for _, t := range all {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s tripStore) GetByID(_ context.Context, id, userID uuid.UUID) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (s tripStore) Update(_ context.Context, t *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.trips[t.ID]; !ok || existing.UserID != t.UserID {
		return repository.ErrNotFound
	}
	s.trips[t.ID] = *t
	return nil
}

func (s tripStore) Delete(_ context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.trips[id]; !ok || t.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.trips, id)
	for bid, b := range s.bookings {
		if b.TripID == id {
			delete(s.bookings, bid)
		}
	}
	for eid, e := range s.expenses {
		if e.TripID == id {
			delete(s.expenses, eid)
		}
	}
	return nil
}

type bookingStore struct{ *store }

func (s bookingStore) Create(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = *b
	return nil
}

func (s bookingStore) ListByTrip(_ context.Context, tripID uuid.UUID) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.TripID == tripID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s bookingStore) ListByTripAndType(ctx context.Context, tripID uuid.UUID, typ models.BookingType) ([]models.Booking, error) {
	all, _ := s.ListByTrip(ctx, tripID)
	var out []models.Booking
	for _, b := range all {
		if b.Type == typ {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s bookingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b.OwnerID = s.trips[b.TripID].UserID
	return &b, nil
}

func (s bookingStore) Update(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[b.ID]; !ok {
		return repository.ErrNotFound
	}
	s.bookings[b.ID] = *b
	return nil
}

func (s bookingStore) UpdateStatus(_ context.Context, id uuid.UUID, status models.BookingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Status = status
	s.bookings[id] = b
	return nil
}

func (s bookingStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

func (s bookingStore) TotalByTrip(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, error) {
	list, _ := s.ListByTrip(ctx, tripID)
	total := decimal.Zero
	for _, b := range list {
		total = total.Add(decimal.NewFromFloat(b.Price))
	}
	return total, nil
}

func (s bookingStore) SummaryByType(ctx context.Context, tripID uuid.UUID) ([]models.GroupSummary, error) {
	list, _ := s.ListByTrip(ctx, tripID)
	return summarize(len(list), func(i int) (string, float64) { return string(list[i].Type), list[i].Price }), nil
}

type expenseStore struct{ *store }

func (s expenseStore) Create(_ context.Context, e *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[e.ID] = *e
	return nil
}

func (s expenseStore) ListByTrip(_ context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Expense
	for _, e := range s.expenses {
		if e.TripID == tripID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s expenseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.expenses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	e.OwnerID = s.trips[e.TripID].UserID
	return &e, nil
}

func (s expenseStore) Update(_ context.Context, e *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[e.ID]; !ok {
		return repository.ErrNotFound
	}
	s.expenses[e.ID] = *e
	return nil
}

func (s expenseStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}

func (s expenseStore) TotalByTrip(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, error) {
	list, _ := s.ListByTrip(ctx, tripID)
	total := decimal.Zero
	for _, e := range list {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total, nil
}

func (s expenseStore) SummaryByCategory(ctx context.Context, tripID uuid.UUID) ([]models.GroupSummary, error) {
	list, _ := s.ListByTrip(ctx, tripID)
	return summarize(len(list), func(i int) (string, float64) { return string(list[i].Category), list[i].Amount }), nil
}

type favoriteStore struct{ *store }

func (s favoriteStore) Create(_ context.Context, f *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites[f.ID] = *f
	return nil
}

func (s favoriteStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Favorite
	for _, f := range s.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s favoriteStore) GetByID(_ context.Context, id, userID uuid.UUID) (*models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.favorites[id]
	if !ok || f.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (s favoriteStore) Exists(ctx context.Context, userID uuid.UUID, destination string) (bool, error) {
	list, _ := s.ListByUser(ctx, userID)
	for _, f := range list {
		if f.Destination == destination {
			return true, nil
		}
	}
	return false, nil
}

func (s favoriteStore) Update(_ context.Context, f *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.favorites[f.ID]; !ok || existing.UserID != f.UserID {
		return repository.ErrNotFound
	}
	s.favorites[f.ID] = *f
	return nil
}

func (s favoriteStore) Delete(_ context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.favorites[id]; !ok || f.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.favorites, id)
	return nil
}

func summarize(n int, at func(int) (string, float64)) []models.GroupSummary {
	index := map[string]int{}
	var out []models.GroupSummary
	for i := 0; i < n; i++ {
		key, amount := at(i)
		j, ok := index[key]
		if !ok {
			j = len(out)
			index[key] = j
			out = append(out, models.GroupSummary{Key: key})
		}
		out[j].Count++
		out[j].Total += amount
	}
	return out
}

var errOffline = errors.New("provider offline")

type offlineHotels struct{}

func (offlineHotels) Search(context.Context, travel.HotelQuery) ([]travel.Hotel, error) {
	return nil, errOffline
}

type offlineFlights struct{}

func (offlineFlights) Search(context.Context, travel.FlightQuery) ([]travel.Flight, error) {
	return nil, errOffline
}

type offlineRestaurants struct{}

func (offlineRestaurants) Search(context.Context, string) ([]travel.Restaurant, error) {
	return nil, errOffline
}

type offlineWeather struct{}

func (offlineWeather) Current(context.Context, string) (*weather.Current, error) {
	return nil, errOffline
}

func (offlineWeather) Forecast(context.Context, string) ([]weather.ForecastEntry, error) {
	return nil, errOffline
}

type cannedGenerator struct{ text string }

func (g cannedGenerator) Generate(context.Context, string, string) (string, error) {
	return g.text, nil
}

type offlineGateway struct{}

func (offlineGateway) CreateCharge(context.Context, omise.ChargeRequest) (*omise.Charge, error) {
	return nil, errOffline
}

func (offlineGateway) GetCharge(context.Context, string) (*omise.Charge, error) {
	return nil, errOffline
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }
