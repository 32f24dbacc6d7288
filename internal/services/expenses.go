package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/models"
)

type CreateExpenseInput struct {
	TripID   uuid.UUID
	Title    string
	Amount   float64
	Category models.ExpenseCategory
	Date     time.Time
	Notes    *string
}

type ExpensePatch struct {
	Title    *string
	Amount   *float64
	Category *models.ExpenseCategory
	Date     *time.Time
	Notes    *string
}

type ExpenseService struct {
	trips    TripStore
	expenses ExpenseStore
	now      func() time.Time
}

func NewExpenseService(trips TripStore, expenses ExpenseStore) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses, now: time.Now}
}

func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, in CreateExpenseInput) (*models.Expense, error) {
	if in.Amount < 0 {
		return nil, apperr.Validation("amount must not be negative")
	}
	category := in.Category
	if category == "" {
		category = models.ExpenseOthers
	}
	if !category.Valid() {
		return nil, apperr.Validation("invalid expense category")
	}
	if _, err := ownedTrip(ctx, s.trips, in.TripID, userID); err != nil {
		return nil, err
	}

	now := s.now()
	e := &models.Expense{
		ID:        uuid.New(),
		TripID:    in.TripID,
		Title:     strings.TrimSpace(in.Title),
		Amount:    in.Amount,
		Category:  category,
		Date:      in.Date,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
		OwnerID:   userID,
	}
	if e.Date.IsZero() {
		e.Date = now
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, storeErr(err, "expense")
	}
	return e, nil
}

func (s *ExpenseService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]models.Expense, error) {
	if _, err := ownedTrip(ctx, s.trips, tripID, userID); err != nil {
		return nil, err
	}
	list, err := s.expenses.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, storeErr(err, "expenses")
	}
	return list, nil
}

func (s *ExpenseService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "expense")
	}
	if e.OwnerID != userID {
		return nil, apperr.NotFound("expense not found")
	}
	return e, nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, id uuid.UUID, p ExpensePatch) (*models.Expense, error) {
	e, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		e.Title = strings.TrimSpace(*p.Title)
	}
	if p.Amount != nil {
		if *p.Amount < 0 {
			return nil, apperr.Validation("amount must not be negative")
		}
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		if !p.Category.Valid() {
			return nil, apperr.Validation("invalid expense category")
		}
		e.Category = *p.Category
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Notes != nil {
		e.Notes = p.Notes
	}
	e.UpdatedAt = s.now()

	if err := s.expenses.Update(ctx, e); err != nil {
		return nil, storeErr(err, "expense")
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.expenses.Delete(ctx, id); err != nil {
		return storeErr(err, "expense")
	}
	return nil
}

func (s *ExpenseService) Total(ctx context.Context, userID, tripID uuid.UUID) (float64, error) {
	if _, err := ownedTrip(ctx, s.trips, tripID, userID); err != nil {
		return 0, err
	}
	total, err := s.expenses.TotalByTrip(ctx, tripID)
	if err != nil {
		return 0, storeErr(err, "expenses")
	}
	return total.InexactFloat64(), nil
}

func (s *ExpenseService) Summary(ctx context.Context, userID, tripID uuid.UUID) ([]models.GroupSummary, error) {
	if _, err := ownedTrip(ctx, s.trips, tripID, userID); err != nil {
		return nil, err
	}
	summary, err := s.expenses.SummaryByCategory(ctx, tripID)
	if err != nil {
		return nil, storeErr(err, "expenses")
	}
	return summary, nil
}
