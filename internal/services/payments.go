package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/integrations"
	"TRAVELPLANNER_BACK-END/internal/integrations/omise"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/repository"
)

const (
	metaBookingID          = "bookingId"
	metaAdditionalBookings = "additionalBookingIds"
)

type ChargeGateway interface {
	CreateCharge(ctx context.Context, in omise.ChargeRequest) (*omise.Charge, error)
	GetCharge(ctx context.Context, chargeID string) (*omise.Charge, error)
}

type SignatureVerifier interface {
	Verify(body []byte, signatures, timestamp string) error
}

type PaymentSettings struct {
	Methods   []string
	Currency  string
	ReturnURI string
}

type PaymentIntentInput struct {
	BookingID uuid.UUID
	// Amount in major units; nil charges the booking price plus any
	// additionalBookingIds in Metadata.
	Amount   *float64
	Metadata map[string]string
}

type PaymentIntent struct {
	ChargeID      string  `json:"chargeId"`
	BookingID     string  `json:"bookingId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	AuthorizeURI  string  `json:"authorizeUri,omitempty"`
	QRCodeURI     string  `json:"qrCodeUri,omitempty"`
}

type PaymentStatus struct {
	ChargeID       string         `json:"chargeId"`
	Status         string         `json:"status"`
	Paid           bool           `json:"paid"`
	Amount         float64        `json:"amount"`
	Currency       string         `json:"currency"`
	FailureCode    *string        `json:"failureCode,omitempty"`
	FailureMessage *string        `json:"failureMessage,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type WebhookResult struct {
	Event         string               `json:"event"`
	Handled       bool                 `json:"handled"`
	BookingStatus models.BookingStatus `json:"bookingStatus,omitempty"`
	Updated       []uuid.UUID          `json:"updated,omitempty"`
}

type PaymentService struct {
	bookings BookingStore
	gateway  ChargeGateway
	verifier SignatureVerifier
	settings PaymentSettings
	logger   *slog.Logger
}

// NewPaymentService accepts a nil verifier, in which case every webhook is rejected.
func NewPaymentService(bookings BookingStore, gateway ChargeGateway, verifier SignatureVerifier, settings PaymentSettings, logger *slog.Logger) *PaymentService {
	return &PaymentService{bookings: bookings, gateway: gateway, verifier: verifier, settings: settings, logger: logger}
}

// CreateIntent tries each configured payment method in order and returns the first charge created.
func (s *PaymentService) CreateIntent(ctx context.Context, userID uuid.UUID, in PaymentIntentInput) (*PaymentIntent, error) {
	booking, err := s.bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, storeErr(err, "booking")
	}
	if booking.OwnerID != userID {
		return nil, apperr.NotFound("booking not found")
	}
	if booking.Status != models.BookingPending {
		return nil, apperr.BadRequest("booking is not pending payment", nil)
	}

	extra, err := s.additionalBookings(ctx, userID, booking.ID, in.Metadata[metaAdditionalBookings])
	if err != nil {
		return nil, err
	}

	amount := decimal.NewFromFloat(booking.Price)
	for _, b := range extra {
		amount = amount.Add(decimal.NewFromFloat(b.Price))
	}
	if in.Amount != nil {
		amount = decimal.NewFromFloat(*in.Amount)
	}
	if !amount.IsPositive() {
		return nil, apperr.Validation("amount must be greater than zero")
	}

	metadata := make(map[string]string, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	metadata[metaBookingID] = booking.ID.String()
	delete(metadata, metaAdditionalBookings)
	if len(extra) > 0 {
		ids := make([]string, 0, len(extra))
		for _, b := range extra {
			ids = append(ids, b.ID.String())
		}
		metadata[metaAdditionalBookings] = strings.Join(ids, ",")
	}

	var lastErr error
	for _, method := range s.settings.Methods {
		charge, err := s.gateway.CreateCharge(ctx, omise.ChargeRequest{
			Amount:      amount,
			Currency:    s.settings.Currency,
			SourceType:  method,
			ReturnURI:   s.settings.ReturnURI,
			Description: fmt.Sprintf("Booking %s: %s", booking.ID, booking.Title),
			Metadata:    metadata,
		})
		if err != nil {
			s.logger.Warn("payment method failed, trying next", "method", method, "booking_id", booking.ID, "error", err)
			lastErr = err
			continue
		}

		s.logger.Info("payment intent created", "charge_id", charge.ID, "method", method, "booking_id", booking.ID)
		return toPaymentIntent(charge, booking.ID, method), nil
	}

	if lastErr == nil {
		lastErr = errors.New("no payment methods configured")
	}
	return nil, apperr.BadRequest("failed to create payment: "+lastErr.Error(), lastErr)
}

// additionalBookings resolves a comma-separated id list. Every booking must be
// owned by userID and still pending; the webhook trusts what is stored here.
func (s *PaymentService) additionalBookings(ctx context.Context, userID, primary uuid.UUID, raw string) ([]models.Booking, error) {
	var out []models.Booking
	seen := map[uuid.UUID]bool{primary: true}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, apperr.Validation("additionalBookingIds must be comma-separated UUIDs")
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		b, err := s.bookings.GetByID(ctx, id)
		if err != nil {
			return nil, storeErr(err, "booking")
		}
		if b.OwnerID != userID {
			return nil, apperr.NotFound("booking not found")
		}
		if b.Status != models.BookingPending {
			return nil, apperr.BadRequest("booking "+id.String()+" is not pending payment", nil)
		}
		out = append(out, *b)
	}
	return out, nil
}

func (s *PaymentService) Status(ctx context.Context, chargeID string) (*PaymentStatus, error) {
	charge, err := s.gateway.GetCharge(ctx, chargeID)
	if err != nil {
		var ie *integrations.IntegrationError
		if errors.As(err, &ie) && ie.StatusCode == http.StatusNotFound {
			return nil, apperr.NotFound("charge not found")
		}
		return nil, apperr.Integration("failed to fetch payment status", err)
	}
	return &PaymentStatus{
		ChargeID:       charge.ID,
		Status:         charge.Status,
		Paid:           charge.Paid,
		Amount:         omise.ToMajorUnits(charge.Amount).InexactFloat64(),
		Currency:       charge.Currency,
		FailureCode:    charge.FailureCode,
		FailureMessage: charge.FailureMessage,
		Metadata:       charge.Metadata,
	}, nil
}

// HandleWebhook verifies the signature before touching any booking. The primary
// booking must update; additional bookings are best-effort.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature, timestamp string) (*WebhookResult, error) {
	if s.verifier == nil {
		return nil, apperr.Unauthorized("webhook signing secret not configured")
	}
	if err := s.verifier.Verify(body, signature, timestamp); err != nil {
		return nil, apperr.Unauthorized("invalid webhook signature")
	}

	var event omise.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, apperr.Validation("invalid webhook payload")
	}
	if event.Key != omise.EventChargeComplete {
		return &WebhookResult{Event: event.Key}, nil
	}

	primary, err := uuid.Parse(metadataString(event.Data.Metadata, metaBookingID))
	if err != nil {
		return nil, apperr.Validation("webhook charge has no valid bookingId")
	}

	status := models.BookingCancelled
	if event.Data.Paid {
		status = models.BookingConfirmed
	}

	if err := s.bookings.UpdateStatus(ctx, primary, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, apperr.Internal("failed to update booking", err)
	}
	result := &WebhookResult{Event: event.Key, Handled: true, BookingStatus: status, Updated: []uuid.UUID{primary}}

	for _, raw := range strings.Split(metadataString(event.Data.Metadata, metaAdditionalBookings), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Warn("skipping malformed additional booking id", "charge_id", event.Data.ID, "value", raw)
			continue
		}
		if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
			s.logger.Warn("failed to update additional booking", "charge_id", event.Data.ID, "booking_id", id, "error", err)
			continue
		}
		result.Updated = append(result.Updated, id)
	}

	s.logger.Info("payment webhook processed", "charge_id", event.Data.ID, "status", status, "bookings", len(result.Updated))
	return result, nil
}

func toPaymentIntent(c *omise.Charge, bookingID uuid.UUID, method string) *PaymentIntent {
	pi := &PaymentIntent{
		ChargeID:      c.ID,
		BookingID:     bookingID.String(),
		Amount:        omise.ToMajorUnits(c.Amount).InexactFloat64(),
		Currency:      c.Currency,
		Status:        c.Status,
		PaymentMethod: method,
		AuthorizeURI:  c.AuthorizeURI,
	}
	if c.Source != nil && c.Source.ScannableCode != nil {
		pi.QRCodeURI = c.Source.ScannableCode.Image.DownloadURI
	}
	return pi
}

func metadataString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
