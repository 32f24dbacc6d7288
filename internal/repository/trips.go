package repository

import (
	"context"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

const tripColumns = `id, user_id, destination, country, start_date, end_date, budget, status,
	itinerary, notes, ai_suggestions, created_at, updated_at`

type TripRepository struct {
	db DBTX
}

func NewTripRepository(db DBTX) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, t *models.Trip) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trips (`+tripColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.UserID, t.Destination, t.Country, t.StartDate, t.EndDate, t.Budget, t.Status,
		t.Itinerary, t.Notes, t.AISuggestions, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *TripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
	return r.list(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *TripRepository) ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status models.TripStatus) ([]models.Trip, error) {
	return r.list(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`,
		userID, status)
}

// GetByID returns ErrNotFound when the trip is absent or owned by someone else.
func (r *TripRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Trip, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id = $1 AND user_id = $2`, id, userID)
	return scanTrip(row)
}

func (r *TripRepository) Update(ctx context.Context, t *models.Trip) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE trips SET destination = $3, country = $4, start_date = $5, end_date = $6, budget = $7,
		        status = $8, itinerary = $9, notes = $10, ai_suggestions = $11, updated_at = $12
		  WHERE id = $1 AND user_id = $2`,
		t.ID, t.UserID, t.Destination, t.Country, t.StartDate, t.EndDate, t.Budget,
		t.Status, t.Itinerary, t.Notes, t.AISuggestions, t.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (r *TripRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (r *TripRepository) list(ctx context.Context, query string, args ...any) ([]models.Trip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	trips := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return trips, nil
}

func scanTrip(row scanner) (*models.Trip, error) {
	t := &models.Trip{}
	err := row.Scan(&t.ID, &t.UserID, &t.Destination, &t.Country, &t.StartDate, &t.EndDate,
		&t.Budget, &t.Status, &t.Itinerary, &t.Notes, &t.AISuggestions, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, wrapErr(err)
	}
	return t, nil
}
