package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"TRAVELPLANNER_BACK-END/internal/models"
)

const bookingColumns = `b.id, b.trip_id, b.type, b.title, b.price, b.start_date, b.end_date, b.status,
	b.details, b.notes, b.created_at, b.updated_at, t.user_id`

const bookingFrom = ` FROM bookings b JOIN trips t ON t.id = b.trip_id`

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (id, trip_id, type, title, price, start_date, end_date, status, details, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID, b.TripID, b.Type, b.Title, b.Price, b.StartDate, b.EndDate, b.Status,
		b.Details, b.Notes, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *BookingRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+bookingFrom+` WHERE b.trip_id = $1 ORDER BY b.start_date`, tripID)
}

func (r *BookingRepository) ListByTripAndType(ctx context.Context, tripID uuid.UUID, typ models.BookingType) ([]models.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+bookingFrom+` WHERE b.trip_id = $1 AND b.type = $2 ORDER BY b.start_date`,
		tripID, typ)
}

// GetByID fills OwnerID from the parent trip.
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+bookingFrom+` WHERE b.id = $1`, id)
	return scanBooking(row)
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET type = $2, title = $3, price = $4, start_date = $5, end_date = $6,
		        status = $7, details = $8, notes = $9, updated_at = $10
		  WHERE id = $1`,
		b.ID, b.Type, b.Title, b.Price, b.StartDate, b.EndDate, b.Status, b.Details, b.Notes, b.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (r *BookingRepository) TotalByTrip(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(price), 0) FROM bookings WHERE trip_id = $1`, tripID).Scan(&total)
	if err != nil {
		return decimal.Zero, wrapErr(err)
	}
	return total, nil
}

func (r *BookingRepository) SummaryByType(ctx context.Context, tripID uuid.UUID) ([]models.GroupSummary, error) {
	return querySummary(ctx, r.db,
		`SELECT type, COUNT(*), COALESCE(SUM(price), 0) FROM bookings
		  WHERE trip_id = $1 GROUP BY type ORDER BY type`, tripID)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return bookings, nil
}

func scanBooking(row scanner) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(&b.ID, &b.TripID, &b.Type, &b.Title, &b.Price, &b.StartDate, &b.EndDate,
		&b.Status, &b.Details, &b.Notes, &b.CreatedAt, &b.UpdatedAt, &b.OwnerID)
	if err != nil {
		return nil, wrapErr(err)
	}
	return b, nil
}

func querySummary(ctx context.Context, db DBTX, query string, args ...any) ([]models.GroupSummary, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := []models.GroupSummary{}
	for rows.Next() {
		var (
			s     models.GroupSummary
			total decimal.Decimal
		)
		if err := rows.Scan(&s.Key, &s.Count, &total); err != nil {
			return nil, wrapErr(err)
		}
		s.Total = total.InexactFloat64()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}
