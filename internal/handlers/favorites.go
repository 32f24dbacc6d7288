package handlers

import (
	"log/slog"
	"net/http"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

type FavoritesHandler struct {
	favorites *services.FavoriteService
	logger    *slog.Logger
}

func NewFavoritesHandler(favorites *services.FavoriteService, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, logger: logger}
}

// CreateFavorite handles POST /favorites
// @Summary Save a favorite destination
// @Tags favorites
// @Accept json
// @Produce json
// @Param payload body dto.CreateFavoriteRequest true "Favorite payload"
// @Success 201 {object} utils.Envelope{data=models.Favorite}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already saved"
// @Security BearerAuth
// @Router /favorites [post]
func (h *FavoritesHandler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateFavoriteRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	fav, err := h.favorites.Create(r.Context(), userID, services.CreateFavoriteInput{
		Destination:   req.Destination,
		Country:       req.Country,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Tags:          req.Tags,
		AISuggestions: req.AISuggestions,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, fav, "Added to favorites")
}

// ListFavorites handles GET /favorites
// @Summary List my favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} utils.Envelope{data=[]models.Favorite}
// @Security BearerAuth
// @Router /favorites [get]
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	list, err := h.favorites.List(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if list == nil {
		list = []models.Favorite{}
	}
	utils.WriteSuccess(w, http.StatusOK, list, "")
}

// CheckFavorite handles GET /favorites/check/{destination}
// @Summary Whether a destination is saved
// @Tags favorites
// @Produce json
// @Param destination path string true "Destination name"
// @Success 200 {object} utils.Envelope{data=dto.ExistsResponse}
// @Security BearerAuth
// @Router /favorites/check/{destination} [get]
func (h *FavoritesHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	destination := pathText(r, "destination")
	if destination == "" {
		respondError(w, r, h.logger, apperr.Validation("destination is required"))
		return
	}
	exists, err := h.favorites.CheckExists(r.Context(), userID, destination)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.ExistsResponse{Exists: exists}, "")
}

// GetFavorite handles GET /favorites/{id}
// @Summary Get a favorite
// @Tags favorites
// @Produce json
// @Param id path string true "Favorite ID"
// @Success 200 {object} utils.Envelope{data=models.Favorite}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /favorites/{id} [get]
func (h *FavoritesHandler) GetFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	fav, err := h.favorites.Get(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, fav, "")
}

// UpdateFavorite handles PATCH /favorites/{id}
// @Summary Update a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path string true "Favorite ID"
// @Param payload body dto.UpdateFavoriteRequest true "Fields to change"
// @Success 200 {object} utils.Envelope{data=models.Favorite}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /favorites/{id} [patch]
func (h *FavoritesHandler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	var req dto.UpdateFavoriteRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	fav, err := h.favorites.Update(r.Context(), userID, id, services.FavoritePatch{
		Country:       req.Country,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Tags:          req.Tags,
		AISuggestions: req.AISuggestions,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, fav, "Favorite updated")
}

// DeleteFavorite handles DELETE /favorites/{id}
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Param id path string true "Favorite ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /favorites/{id} [delete]
func (h *FavoritesHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.favorites.Delete(r.Context(), userID, id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Removed from favorites")
}
