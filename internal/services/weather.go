package services

import (
	"context"
	"log/slog"
	"time"

	"TRAVELPLANNER_BACK-END/internal/integrations/weather"
)

type WeatherProvider interface {
	Current(ctx context.Context, city string) (*weather.Current, error)
	Forecast(ctx context.Context, city string) ([]weather.ForecastEntry, error)
}

// WeatherService substitutes static readings when the provider is unavailable.
type WeatherService struct {
	provider WeatherProvider
	logger   *slog.Logger
	now      func() time.Time
}

func NewWeatherService(provider WeatherProvider, logger *slog.Logger) *WeatherService {
	return &WeatherService{provider: provider, logger: logger, now: time.Now}
}

func (s *WeatherService) Current(ctx context.Context, city string) *weather.Current {
	current, err := s.provider.Current(ctx, city)
	if err != nil {
		s.logger.Warn("weather lookup failed, using fallback", "city", city, "error", err)
		return weather.Fallback(city)
	}
	return current
}

func (s *WeatherService) Forecast(ctx context.Context, city string) []weather.ForecastEntry {
	entries, err := s.provider.Forecast(ctx, city)
	if err != nil || len(entries) == 0 {
		s.logger.Warn("forecast lookup failed, using fallback", "city", city, "error", err)
		return weather.FallbackForecast(city, s.now())
	}
	return entries
}
