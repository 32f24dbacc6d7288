package handlers

import (
	"log/slog"
	"net/http"

	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// AIHandler exposes the travel advisor
type AIHandler struct {
	ai     *services.AIService
	logger *slog.Logger
}

func NewAIHandler(ai *services.AIService, logger *slog.Logger) *AIHandler {
	return &AIHandler{ai: ai, logger: logger}
}

// SuggestDestinations handles POST /ai/suggest-destinations
// @Summary Suggest three destinations within a budget
// @Description Uses current weather in reference cities. Falls back to a fixed set when the model output is unusable.
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body dto.SuggestDestinationsRequest true "Preferences"
// @Success 200 {object} utils.Envelope{data=[]services.DestinationSuggestion}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai/suggest-destinations [post]
func (h *AIHandler) SuggestDestinations(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestDestinationsRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	suggestions, err := h.ai.SuggestDestinations(r.Context(), services.DestinationRequest{
		Budget:          req.Budget,
		Interests:       req.Interests,
		TravelStyle:     req.TravelStyle,
		Duration:        req.Duration,
		PreferredSeason: req.PreferredSeason,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, suggestions, "")
}

// GenerateItinerary handles POST /ai/generate-itinerary
// @Summary Generate a day-by-day itinerary
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body dto.GenerateItineraryRequest true "Trip outline"
// @Success 200 {object} utils.Envelope{data=dto.TextResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai/generate-itinerary [post]
func (h *AIHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateItineraryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	text, err := h.ai.GenerateItinerary(r.Context(), services.ItineraryRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Interests:   req.Interests,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.TextResponse{Text: text}, "")
}

// BestTravelTime handles POST /ai/best-travel-time
// @Summary Advise when to visit a destination
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body dto.BestTravelTimeRequest true "Destination"
// @Success 200 {object} utils.Envelope{data=dto.TextResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai/best-travel-time [post]
func (h *AIHandler) BestTravelTime(w http.ResponseWriter, r *http.Request) {
	var req dto.BestTravelTimeRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	text, err := h.ai.SuggestBestTravelTime(r.Context(), req.Destination)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.TextResponse{Text: text}, "")
}

// Chat handles POST /ai/chat
// @Summary Chat with the travel advisor
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body dto.ChatRequest true "Message"
// @Success 200 {object} utils.Envelope{data=dto.TextResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai/chat [post]
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	text, err := h.ai.Chat(r.Context(), req.Message, req.Context)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.TextResponse{Text: text}, "")
}

// SearchDestinations handles POST /ai/search-destinations
// @Summary Find up to five destinations matching a query
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body dto.SearchDestinationsRequest true "Query"
// @Success 200 {object} utils.Envelope{data=[]services.DestinationCandidate}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai/search-destinations [post]
func (h *AIHandler) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchDestinationsRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	found, err := h.ai.SearchDestinations(r.Context(), req.Query)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, found, "")
}
