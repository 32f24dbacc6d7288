package models

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseCategory string

const (
	ExpenseAccommodation ExpenseCategory = "accommodation"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseActivities    ExpenseCategory = "activities"
	ExpenseShopping      ExpenseCategory = "shopping"
	ExpenseOthers        ExpenseCategory = "others"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseAccommodation, ExpenseFood, ExpenseTransport, ExpenseActivities, ExpenseShopping, ExpenseOthers:
		return true
	}
	return false
}

type Expense struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	TripID    uuid.UUID       `json:"tripId" db:"trip_id"`
	Title     string          `json:"title" db:"title"`
	Amount    float64         `json:"amount" db:"amount"`
	Category  ExpenseCategory `json:"category" db:"category"`
	Date      time.Time       `json:"date" db:"date"`
	Notes     *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`

	OwnerID uuid.UUID `json:"-" db:"-"`
}
