package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/integrations/travel"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

type BookingsHandler struct {
	bookings *services.BookingService
	search   *services.SearchService
	logger   *slog.Logger
}

func NewBookingsHandler(bookings *services.BookingService, search *services.SearchService, logger *slog.Logger) *BookingsHandler {
	return &BookingsHandler{bookings: bookings, search: search, logger: logger}
}

// CreateBooking handles POST /bookings
// @Summary Create a booking
// @Description New bookings always start as pending
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.Envelope{data=models.Booking}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Trip not found"
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingsHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	tripID, err := parseUUID(req.TripID, "tripId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		respondError(w, r, h.logger, apperr.Validation("startDate must be YYYY-MM-DD or RFC3339"))
		return
	}
	end, err := utils.ParseOptionalDate(req.EndDate)
	if err != nil {
		respondError(w, r, h.logger, apperr.Validation("endDate must be YYYY-MM-DD or RFC3339"))
		return
	}

	booking, err := h.bookings.Create(r.Context(), userID, services.CreateBookingInput{
		TripID:    tripID,
		Type:      models.BookingType(req.Type),
		Title:     req.Title,
		Price:     req.Price,
		StartDate: start,
		EndDate:   end,
		Details:   req.Details,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, booking, "Booking created")
}

// ListByTrip handles GET /bookings/trip/{tripId}
// @Summary List bookings of a trip
// @Tags bookings
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.Envelope{data=[]models.Booking}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/trip/{tripId} [get]
func (h *BookingsHandler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	var list []models.Booking
	if typ := chi.URLParam(r, "type"); typ != "" {
		list, err = h.bookings.ListByTripAndType(r.Context(), userID, tripID, models.BookingType(typ))
	} else {
		list, err = h.bookings.ListByTrip(r.Context(), userID, tripID)
	}
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if list == nil {
		list = []models.Booking{}
	}
	utils.WriteSuccess(w, http.StatusOK, list, "")
}

// Total handles GET /bookings/trip/{tripId}/total
// @Summary Total booking cost of a trip
// @Tags bookings
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.Envelope{data=number}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/trip/{tripId}/total [get]
func (h *BookingsHandler) Total(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	total, err := h.bookings.Total(r.Context(), userID, tripID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, total, "")
}

// Summary handles GET /bookings/trip/{tripId}/summary
// @Summary Booking count and cost per type
// @Tags bookings
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.Envelope{data=[]dto.BookingSummaryItem}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/trip/{tripId}/summary [get]
func (h *BookingsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	groups, err := h.bookings.Summary(r.Context(), userID, tripID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	items := make([]dto.BookingSummaryItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, dto.BookingSummaryItem{Type: g.Key, Count: g.Count, Total: g.Total})
	}
	utils.WriteSuccess(w, http.StatusOK, items, "")
}

// GetBooking handles GET /bookings/{id}
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.Envelope{data=models.Booking}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *BookingsHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	booking, err := h.bookings.Get(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, booking, "")
}

// UpdateBooking handles PATCH /bookings/{id}
// @Summary Update a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param payload body dto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} utils.Envelope{data=models.Booking}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id} [patch]
func (h *BookingsHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	var req dto.UpdateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	patch := services.BookingPatch{Title: req.Title, Price: req.Price, Details: req.Details, Notes: req.Notes}
	if req.Type != nil {
		typ := models.BookingType(*req.Type)
		patch.Type = &typ
	}
	if req.Status != nil {
		status := models.BookingStatus(*req.Status)
		patch.Status = &status
	}
	if patch.StartDate, err = utils.ParseOptionalDate(req.StartDate); err != nil {
		respondError(w, r, h.logger, apperr.Validation("startDate must be YYYY-MM-DD or RFC3339"))
		return
	}
	if patch.EndDate, err = utils.ParseOptionalDate(req.EndDate); err != nil {
		respondError(w, r, h.logger, apperr.Validation("endDate must be YYYY-MM-DD or RFC3339"))
		return
	}

	booking, err := h.bookings.Update(r.Context(), userID, id, patch)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, booking, "Booking updated")
}

// DeleteBooking handles DELETE /bookings/{id}
// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id} [delete]
func (h *BookingsHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.bookings.Delete(r.Context(), userID, id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Booking deleted")
}

// SearchHotels handles GET /bookings/search/hotels
// @Summary Search hotels
// @Description Falls back to sample hotels when the provider is unavailable
// @Tags search
// @Produce json
// @Param destination query string true "City or region"
// @Param checkIn query string false "YYYY-MM-DD"
// @Param checkOut query string false "YYYY-MM-DD"
// @Param adults query int false "Adults" default(2)
// @Param rooms query int false "Rooms" default(1)
// @Param currency query string false "Currency" default(THB)
// @Success 200 {object} utils.Envelope{data=[]travel.Hotel}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/search/hotels [get]
func (h *BookingsHandler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	destination := strings.TrimSpace(q.Get("destination"))
	if destination == "" {
		respondError(w, r, h.logger, apperr.Validation("destination is required"))
		return
	}
	hotels := h.search.SearchHotels(r.Context(), travel.HotelQuery{
		Destination: destination,
		CheckIn:     q.Get("checkIn"),
		CheckOut:    q.Get("checkOut"),
		Adults:      queryInt(q.Get("adults"), 2),
		Rooms:       queryInt(q.Get("rooms"), 1),
		Currency:    q.Get("currency"),
	})
	utils.WriteSuccess(w, http.StatusOK, hotels, "")
}

// SearchFlights handles GET /bookings/search/flights
// @Summary Search flights
// @Description Falls back to sample flights when the provider is unavailable
// @Tags search
// @Produce json
// @Param from query string true "Origin IATA code"
// @Param to query string true "Destination IATA code"
// @Param date query string false "YYYY-MM-DD"
// @Param adults query int false "Adults" default(1)
// @Param cabin query string false "Cabin class" default(economy)
// @Param currency query string false "Currency" default(THB)
// @Success 200 {object} utils.Envelope{data=[]travel.Flight}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/search/flights [get]
func (h *BookingsHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := strings.ToUpper(strings.TrimSpace(q.Get("from"))), strings.ToUpper(strings.TrimSpace(q.Get("to")))
	if from == "" || to == "" {
		respondError(w, r, h.logger, apperr.Validation("from and to are required"))
		return
	}
	flights := h.search.SearchFlights(r.Context(), travel.FlightQuery{
		From:     from,
		To:       to,
		Date:     q.Get("date"),
		Adults:   queryInt(q.Get("adults"), 1),
		Cabin:    q.Get("cabin"),
		Currency: q.Get("currency"),
	})
	utils.WriteSuccess(w, http.StatusOK, flights, "")
}

// SearchRestaurants handles GET /bookings/search/restaurants
// @Summary Search restaurants
// @Description Falls back to sample restaurants when the provider is unavailable
// @Tags search
// @Produce json
// @Param destination query string true "City or region"
// @Success 200 {object} utils.Envelope{data=[]travel.Restaurant}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/search/restaurants [get]
func (h *BookingsHandler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if destination == "" {
		respondError(w, r, h.logger, apperr.Validation("destination is required"))
		return
	}
	utils.WriteSuccess(w, http.StatusOK, h.search.SearchRestaurants(r.Context(), destination), "")
}

func queryInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
