package dto

type CreatePaymentIntentRequest struct {
	BookingID string            `json:"bookingId" validate:"required,uuid"`
	Amount    *float64          `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
