package handlers

import (
	"log/slog"
	"net/http"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

type WeatherHandler struct {
	weather *services.WeatherService
	logger  *slog.Logger
}

func NewWeatherHandler(weather *services.WeatherService, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{weather: weather, logger: logger}
}

// Current handles GET /weather/current/{city}
// @Summary Current weather in a city
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} utils.Envelope{data=weather.Current}
// @Security BearerAuth
// @Router /weather/current/{city} [get]
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	city := pathText(r, "city")
	if city == "" {
		respondError(w, r, h.logger, apperr.Validation("city is required"))
		return
	}
	utils.WriteSuccess(w, http.StatusOK, h.weather.Current(r.Context(), city), "")
}

// Forecast handles GET /weather/forecast/{city}
// @Summary Five day forecast for a city
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} utils.Envelope{data=[]weather.ForecastEntry}
// @Security BearerAuth
// @Router /weather/forecast/{city} [get]
func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	city := pathText(r, "city")
	if city == "" {
		respondError(w, r, h.logger, apperr.Validation("city is required"))
		return
	}
	utils.WriteSuccess(w, http.StatusOK, h.weather.Forecast(r.Context(), city), "")
}
