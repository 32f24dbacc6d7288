package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"TRAVELPLANNER_BACK-END/internal/models"
)

const expenseColumns = `e.id, e.trip_id, e.title, e.amount, e.category, e.date, e.notes,
	e.created_at, e.updated_at, t.user_id`

const expenseFrom = ` FROM expenses e JOIN trips t ON t.id = e.trip_id`

type ExpenseRepository struct {
	db DBTX
}

func NewExpenseRepository(db DBTX) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, title, amount, category, date, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.TripID, e.Title, e.Amount, e.Category, e.Date, e.Notes, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *ExpenseRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+expenseColumns+expenseFrom+` WHERE e.trip_id = $1 ORDER BY e.date`, tripID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+expenseColumns+expenseFrom+` WHERE e.id = $1`, id)
	return scanExpense(row)
}

func (r *ExpenseRepository) Update(ctx context.Context, e *models.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET title = $2, amount = $3, category = $4, date = $5, notes = $6, updated_at = $7
		  WHERE id = $1`,
		e.ID, e.Title, e.Amount, e.Category, e.Date, e.Notes, e.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (r *ExpenseRepository) TotalByTrip(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE trip_id = $1`, tripID).Scan(&total)
	if err != nil {
		return decimal.Zero, wrapErr(err)
	}
	return total, nil
}

func (r *ExpenseRepository) SummaryByCategory(ctx context.Context, tripID uuid.UUID) ([]models.GroupSummary, error) {
	return querySummary(ctx, r.db,
		`SELECT category, COUNT(*), COALESCE(SUM(amount), 0) FROM expenses
		  WHERE trip_id = $1 GROUP BY category ORDER BY category`, tripID)
}

func scanExpense(row scanner) (*models.Expense, error) {
	e := &models.Expense{}
	err := row.Scan(&e.ID, &e.TripID, &e.Title, &e.Amount, &e.Category, &e.Date, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt, &e.OwnerID)
	if err != nil {
		return nil, wrapErr(err)
	}
	return e, nil
}
