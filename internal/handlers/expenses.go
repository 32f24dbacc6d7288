package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

type ExpensesHandler struct {
	expenses *services.ExpenseService
	logger   *slog.Logger
}

func NewExpensesHandler(expenses *services.ExpenseService, logger *slog.Logger) *ExpensesHandler {
	return &ExpensesHandler{expenses: expenses, logger: logger}
}

// CreateExpense handles POST /expenses
// @Summary Record an expense
// @Description Category defaults to others and date to now
// @Tags expenses
// @Accept json
// @Produce json
// @Param payload body dto.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} utils.Envelope{data=models.Expense}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Trip not found"
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpensesHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	tripID, err := parseUUID(req.TripID, "tripId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	var date time.Time
	if req.Date != "" {
		if date, err = utils.ParseDate(req.Date); err != nil {
			respondError(w, r, h.logger, apperr.Validation("date must be YYYY-MM-DD or RFC3339"))
			return
		}
	}

	expense, err := h.expenses.Create(r.Context(), userID, services.CreateExpenseInput{
		TripID:   tripID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: models.ExpenseCategory(req.Category),
		Date:     date,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, expense, "Expense created")
}

// ListByTrip handles GET /expenses/trip/{tripId}
// @Summary List expenses of a trip
// @Tags expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.Envelope{data=[]models.Expense}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/trip/{tripId} [get]
func (h *ExpensesHandler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	list, err := h.expenses.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if list == nil {
		list = []models.Expense{}
	}
	utils.WriteSuccess(w, http.StatusOK, list, "")
}

// Total handles GET /expenses/trip/{tripId}/total
// @Summary Total spent on a trip
// @Tags expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.Envelope{data=number}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/trip/{tripId}/total [get]
func (h *ExpensesHandler) Total(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	total, err := h.expenses.Total(r.Context(), userID, tripID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, total, "")
}

// Summary handles GET /expenses/trip/{tripId}/summary
// @Summary Expense count and amount per category
// @Tags expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.Envelope{data=[]dto.ExpenseSummaryItem}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/trip/{tripId}/summary [get]
func (h *ExpensesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	groups, err := h.expenses.Summary(r.Context(), userID, tripID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	items := make([]dto.ExpenseSummaryItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, dto.ExpenseSummaryItem{Category: g.Key, Count: g.Count, Total: g.Total})
	}
	utils.WriteSuccess(w, http.StatusOK, items, "")
}

// GetExpense handles GET /expenses/{id}
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} utils.Envelope{data=models.Expense}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *ExpensesHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	expense, err := h.expenses.Get(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, expense, "")
}

// UpdateExpense handles PATCH /expenses/{id}
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param payload body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} utils.Envelope{data=models.Expense}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [patch]
func (h *ExpensesHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	var req dto.UpdateExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	patch := services.ExpensePatch{Title: req.Title, Amount: req.Amount, Notes: req.Notes}
	if req.Category != nil {
		category := models.ExpenseCategory(*req.Category)
		patch.Category = &category
	}
	if patch.Date, err = utils.ParseOptionalDate(req.Date); err != nil {
		respondError(w, r, h.logger, apperr.Validation("date must be YYYY-MM-DD or RFC3339"))
		return
	}

	expense, err := h.expenses.Update(r.Context(), userID, id, patch)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, expense, "Expense updated")
}

// DeleteExpense handles DELETE /expenses/{id}
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *ExpensesHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.expenses.Delete(r.Context(), userID, id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Expense deleted")
}
