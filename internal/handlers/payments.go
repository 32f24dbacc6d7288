package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/integrations/omise"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

const maxWebhookBytes = 1 << 20

type PaymentsHandler struct {
	payments *services.PaymentService
	logger   *slog.Logger
}

func NewPaymentsHandler(payments *services.PaymentService, logger *slog.Logger) *PaymentsHandler {
	return &PaymentsHandler{payments: payments, logger: logger}
}

// CreateIntent handles POST /payments/create-intent
// @Summary Create a charge for a pending booking
// @Description Tries each configured payment method in order. Amount defaults to the booking price.
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body dto.CreatePaymentIntentRequest true "Booking to pay"
// @Success 201 {object} utils.Envelope{data=services.PaymentIntent}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payments/create-intent [post]
func (h *PaymentsHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req dto.CreatePaymentIntentRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	bookingID, err := parseUUID(req.BookingID, "bookingId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	intent, err := h.payments.CreateIntent(r.Context(), userID, services.PaymentIntentInput{
		BookingID: bookingID,
		Amount:    req.Amount,
		Metadata:  req.Metadata,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, intent, "Payment intent created")
}

// Webhook handles POST /payments/webhook
// @Summary Gateway event callback
// @Description Requires a valid Omise-Signature. charge.complete confirms or cancels the booking; other events are acknowledged.
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.Envelope{data=services.WebhookResult}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/webhook [post]
func (h *PaymentsHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, h.logger, apperr.Validation("request body too large"))
			return
		}
		respondError(w, r, h.logger, apperr.BadRequest("could not read request body", err))
		return
	}

	result, err := h.payments.HandleWebhook(r.Context(), body,
		r.Header.Get(omise.SignatureHeader), r.Header.Get(omise.TimestampHeader))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnauthorized {
			h.logger.Warn("rejected payment webhook", "remote_addr", r.RemoteAddr, "error", err)
		}
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, result, "")
}

// Status handles GET /payments/status/{chargeId}
// @Summary Current state of a charge
// @Tags payments
// @Produce json
// @Param chargeId path string true "Charge ID"
// @Success 200 {object} utils.Envelope{data=services.PaymentStatus}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payments/status/{chargeId} [get]
func (h *PaymentsHandler) Status(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	chargeID := pathText(r, "chargeId")
	if chargeID == "" {
		respondError(w, r, h.logger, apperr.Validation("chargeId is required"))
		return
	}
	status, err := h.payments.Status(r.Context(), chargeID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, status, "")
}
