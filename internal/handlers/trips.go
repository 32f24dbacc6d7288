package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	trips  *services.TripService
	logger *slog.Logger
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(trips *services.TripService, logger *slog.Logger) *TripsHandler {
	return &TripsHandler{trips: trips, logger: logger}
}

// CreateTrip handles POST /trips
// @Summary Create a new trip
// @Tags trips
// @Accept json
// @Produce json
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.Envelope{data=models.Trip}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	startAt, err := utils.ParseDate(req.StartDate)
	if err != nil {
		respondError(w, r, h.logger, apperr.Validation("startDate must be YYYY-MM-DD or RFC3339"))
		return
	}
	endAt, err := utils.ParseDate(req.EndDate)
	if err != nil {
		respondError(w, r, h.logger, apperr.Validation("endDate must be YYYY-MM-DD or RFC3339"))
		return
	}

	trip, err := h.trips.Create(r.Context(), userID, services.CreateTripInput{
		Destination:   req.Destination,
		Country:       req.Country,
		StartDate:     startAt,
		EndDate:       endAt,
		Budget:        req.Budget,
		Status:        models.TripStatus(req.Status),
		Itinerary:     req.Itinerary,
		Notes:         req.Notes,
		AISuggestions: req.AISuggestions,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, trip, "Trip created")
}

// ListTrips handles GET /trips
// @Summary List my trips
// @Tags trips
// @Produce json
// @Success 200 {object} utils.Envelope{data=[]models.Trip}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	trips, err := h.trips.List(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	utils.WriteSuccess(w, http.StatusOK, trips, "")
}

// Stats handles GET /trips/stats
// @Summary Trip statistics
// @Tags trips
// @Produce json
// @Success 200 {object} utils.Envelope{data=models.TripStats}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/stats [get]
func (h *TripsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	stats, err := h.trips.Stats(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, stats, "")
}

// ListByStatus handles GET /trips/status/{status}
// @Summary List my trips with a status
// @Tags trips
// @Produce json
// @Param status path string true "planning, confirmed, in_progress, completed or cancelled"
// @Success 200 {object} utils.Envelope{data=[]models.Trip}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/status/{status} [get]
func (h *TripsHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	trips, err := h.trips.ListByStatus(r.Context(), userID, models.TripStatus(chi.URLParam(r, "status")))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	utils.WriteSuccess(w, http.StatusOK, trips, "")
}

// TripDetail handles GET /trips/{id}
// @Summary Get a trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.Envelope{data=models.Trip}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	trip, err := h.trips.Get(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, trip, "")
}

// UpdateTrip handles PATCH /trips/{id}
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param payload body dto.UpdateTripRequest true "Fields to change"
// @Success 200 {object} utils.Envelope{data=models.Trip}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [patch]
func (h *TripsHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	var req dto.UpdateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	patch := services.TripPatch{
		Destination:   req.Destination,
		Country:       req.Country,
		Budget:        req.Budget,
		Itinerary:     req.Itinerary,
		Notes:         req.Notes,
		AISuggestions: req.AISuggestions,
	}
	if patch.StartDate, err = utils.ParseOptionalDate(req.StartDate); err != nil {
		respondError(w, r, h.logger, apperr.Validation("startDate must be YYYY-MM-DD or RFC3339"))
		return
	}
	if patch.EndDate, err = utils.ParseOptionalDate(req.EndDate); err != nil {
		respondError(w, r, h.logger, apperr.Validation("endDate must be YYYY-MM-DD or RFC3339"))
		return
	}
	if req.Status != nil {
		status := models.TripStatus(*req.Status)
		patch.Status = &status
	}

	trip, err := h.trips.Update(r.Context(), userID, id, patch)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, trip, "Trip updated")
}

// DeleteTrip handles DELETE /trips/{id}
// @Summary Delete a trip
// @Description Deletes the trip with its bookings and expenses
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.trips.Delete(r.Context(), userID, id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Trip deleted")
}
