package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/repository"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type memUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uuid.UUID]*models.User{}} }

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Update(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

type memTrips struct {
	mu    sync.Mutex
	trips []models.Trip
}

func (m *memTrips) Create(_ context.Context, t *models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, *t)
	return nil
}

func (m *memTrips) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Trip
	for _, t := range m.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTrips) ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status models.TripStatus) ([]models.Trip, error) {
	all, _ := m.ListByUser(ctx, userID)
	var out []models.Trip
	for _, t := range all {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTrips) GetByID(_ context.Context, id, userID uuid.UUID) (*models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trips {
		if t.ID == id && t.UserID == userID {
			cp := t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memTrips) Update(_ context.Context, t *models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.trips {
		if m.trips[i].ID == t.ID && m.trips[i].UserID == t.UserID {
			m.trips[i] = *t
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memTrips) Delete(_ context.Context, id, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.trips {
		if t.ID == id && t.UserID == userID {
			m.trips = append(m.trips[:i], m.trips[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memTrips) owner(tripID uuid.UUID) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trips {
		if t.ID == tripID {
			return t.UserID
		}
	}
	return uuid.Nil
}

type memBookings struct {
	mu       sync.Mutex
	trips    *memTrips
	bookings []models.Booking
	// failStatus makes UpdateStatus fail for these ids
	failStatus map[uuid.UUID]bool
}

func newMemBookings(trips *memTrips) *memBookings {
	return &memBookings{trips: trips, failStatus: map[uuid.UUID]bool{}}
}

func (m *memBookings) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookings) ListByTrip(_ context.Context, tripID uuid.UUID) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.TripID == tripID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) ListByTripAndType(ctx context.Context, tripID uuid.UUID, typ models.BookingType) ([]models.Booking, error) {
	all, _ := m.ListByTrip(ctx, tripID)
	var out []models.Booking
	for _, b := range all {
		if b.Type == typ {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	var found *models.Booking
	for _, b := range m.bookings {
		if b.ID == id {
			cp := b
			found = &cp
		}
	}
	m.mu.Unlock()
	if found == nil {
		return nil, repository.ErrNotFound
	}
	found.OwnerID = m.trips.owner(found.TripID)
	return found, nil
}

func (m *memBookings) Update(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == b.ID {
			m.bookings[i] = *b
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memBookings) UpdateStatus(_ context.Context, id uuid.UUID, status models.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failStatus[id] {
		return repository.ErrNotFound
	}
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memBookings) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.bookings {
		if b.ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memBookings) TotalByTrip(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, error) {
	list, _ := m.ListByTrip(ctx, tripID)
	total := decimal.Zero
	for _, b := range list {
		total = total.Add(decimal.NewFromFloat(b.Price))
	}
	return total, nil
}

func (m *memBookings) SummaryByType(ctx context.Context, tripID uuid.UUID) ([]models.GroupSummary, error) {
	list, _ := m.ListByTrip(ctx, tripID)
	groups := map[string]*models.GroupSummary{}
	for _, b := range list {
		g, ok := groups[string(b.Type)]
		if !ok {
			g = &models.GroupSummary{Key: string(b.Type)}
			groups[string(b.Type)] = g
		}
		g.Count++
		g.Total += b.Price
	}
	out := make([]models.GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *memBookings) status(id uuid.UUID) models.BookingStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			return b.Status
		}
	}
	return ""
}

type memExpenses struct {
	mu       sync.Mutex
	trips    *memTrips
	expenses []models.Expense
}

func (m *memExpenses) Create(_ context.Context, e *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses = append(m.expenses, *e)
	return nil
}

func (m *memExpenses) ListByTrip(_ context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Expense
	for _, e := range m.expenses {
		if e.TripID == tripID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memExpenses) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	m.mu.Lock()
	var found *models.Expense
	for _, e := range m.expenses {
		if e.ID == id {
			cp := e
			found = &cp
		}
	}
	m.mu.Unlock()
	if found == nil {
		return nil, repository.ErrNotFound
	}
	found.OwnerID = m.trips.owner(found.TripID)
	return found, nil
}

func (m *memExpenses) Update(_ context.Context, e *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.expenses {
		if m.expenses[i].ID == e.ID {
			m.expenses[i] = *e
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memExpenses) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.expenses {
		if e.ID == id {
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memExpenses) TotalByTrip(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, error) {
	list, _ := m.ListByTrip(ctx, tripID)
	total := decimal.Zero
	for _, e := range list {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total, nil
}

func (m *memExpenses) SummaryByCategory(ctx context.Context, tripID uuid.UUID) ([]models.GroupSummary, error) {
	list, _ := m.ListByTrip(ctx, tripID)
	groups := map[string]*models.GroupSummary{}
	for _, e := range list {
		g, ok := groups[string(e.Category)]
		if !ok {
			g = &models.GroupSummary{Key: string(e.Category)}
			groups[string(e.Category)] = g
		}
		g.Count++
		g.Total += e.Amount
	}
	out := make([]models.GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

type memFavorites struct {
	mu   sync.Mutex
	favs []models.Favorite
}

func (m *memFavorites) Create(_ context.Context, f *models.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favs = append(m.favs, *f)
	return nil
}

func (m *memFavorites) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Favorite
	for _, f := range m.favs {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFavorites) GetByID(_ context.Context, id, userID uuid.UUID) (*models.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.favs {
		if f.ID == id && f.UserID == userID {
			cp := f
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memFavorites) Exists(_ context.Context, userID uuid.UUID, destination string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.favs {
		if f.UserID == userID && f.Destination == destination {
			return true, nil
		}
	}
	return false, nil
}

func (m *memFavorites) Update(_ context.Context, f *models.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.favs {
		if m.favs[i].ID == f.ID && m.favs[i].UserID == f.UserID {
			m.favs[i] = *f
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memFavorites) Delete(_ context.Context, id, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.favs {
		if f.ID == id && f.UserID == userID {
			m.favs = append(m.favs[:i], m.favs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
