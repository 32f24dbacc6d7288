package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/models"
)

type memObjects struct {
	objects map[string][]byte
	putErr  error
}

func (m *memObjects) Put(_ context.Context, key, _ string, body []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = body
	return nil
}

func (m *memObjects) PresignGet(_ context.Context, key string) (string, error) {
	return "https://storage.example/" + key + "?sig=1", nil
}

func exportFixture(t *testing.T, store ObjectStore) (*ExportService, uuid.UUID, *models.Trip) {
	t.Helper()
	ctx := context.Background()
	trips := &memTrips{}
	bookings := newMemBookings(trips)
	expenses := &memExpenses{trips: trips}
	owner := uuid.New()

	notes := "ทริปครอบครัว"
	trip, err := NewTripService(trips).Create(ctx, owner, CreateTripInput{
		Destination: "Chiang Mai", Country: "Thailand", Budget: 9000, Notes: &notes,
		StartDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
		Itinerary: models.Itinerary{{Day: 1, Title: "Old city", Activities: []string{"Wat Phra Singh", "Night bazaar"}}},
	})
	require.NoError(t, err)
	_, err = NewBookingService(trips, bookings).Create(ctx, owner, CreateBookingInput{TripID: trip.ID, Type: models.BookingHotel, Title: "Riverside", Price: 2500, StartDate: trip.StartDate})
	require.NoError(t, err)
	_, err = NewExpenseService(trips, expenses).Create(ctx, owner, CreateExpenseInput{TripID: trip.ID, Title: "Khao soi", Amount: 60, Category: models.ExpenseFood})
	require.NoError(t, err)

	return NewExportService(trips, bookings, expenses, store, discardLogger), owner, trip
}

func TestRenderPDF(t *testing.T) {
	svc, owner, trip := exportFixture(t, nil)

	doc, got, err := svc.RenderPDF(context.Background(), owner, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))

	_, _, err = svc.RenderPDF(context.Background(), uuid.New(), trip.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestArchive(t *testing.T) {
	store := &memObjects{objects: map[string][]byte{}}
	svc, owner, trip := exportFixture(t, store)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	res, err := svc.Archive(context.Background(), owner, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "exports/"+owner.String()+"/"+trip.ID.String()+"-1700000000.pdf", res.Key)
	assert.Contains(t, res.URL, res.Key)
	assert.Contains(t, store.objects, res.Key)

	store.putErr = errors.New("bucket gone")
	_, err = svc.Archive(context.Background(), owner, trip.ID)
	assert.Equal(t, apperr.KindIntegration, apperr.KindOf(err))
}

func TestArchive_NotConfigured(t *testing.T) {
	svc, owner, trip := exportFixture(t, nil)
	_, err := svc.Archive(context.Background(), owner, trip.ID)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}
