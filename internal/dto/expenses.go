package dto

type CreateExpenseRequest struct {
	TripID   string  `json:"tripId" validate:"required,uuid"`
	Title    string  `json:"title" validate:"required,max=200"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Category string  `json:"category,omitempty" validate:"omitempty,oneof=accommodation food transport activities shopping others"`
	Date     string  `json:"date,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type UpdateExpenseRequest struct {
	Title    *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Amount   *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Category *string  `json:"category,omitempty" validate:"omitempty,oneof=accommodation food transport activities shopping others"`
	Date     *string  `json:"date,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

type ExpenseSummaryItem struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}
