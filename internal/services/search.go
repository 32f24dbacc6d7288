package services

import (
	"context"
	"errors"
	"log/slog"

	"TRAVELPLANNER_BACK-END/internal/integrations"
	"TRAVELPLANNER_BACK-END/internal/integrations/travel"
)

type HotelSearcher interface {
	Search(ctx context.Context, q travel.HotelQuery) ([]travel.Hotel, error)
}

type FlightSearcher interface {
	Search(ctx context.Context, q travel.FlightQuery) ([]travel.Flight, error)
}

type RestaurantSearcher interface {
	Search(ctx context.Context, destination string) ([]travel.Restaurant, error)
}

// SearchService owns the fallback policy for the travel search adapters.
// Callers always get a non-empty list and never an error.
type SearchService struct {
	hotels      HotelSearcher
	flights     FlightSearcher
	restaurants RestaurantSearcher
	logger      *slog.Logger
}

func NewSearchService(hotels HotelSearcher, flights FlightSearcher, restaurants RestaurantSearcher, logger *slog.Logger) *SearchService {
	return &SearchService{hotels: hotels, flights: flights, restaurants: restaurants, logger: logger}
}

func (s *SearchService) SearchHotels(ctx context.Context, q travel.HotelQuery) []travel.Hotel {
	hotels, err := s.hotels.Search(ctx, q)
	if err != nil || len(hotels) == 0 {
		s.logFallback("hotels", q.Destination, err)
		return travel.FallbackHotels(q)
	}
	return hotels
}

func (s *SearchService) SearchFlights(ctx context.Context, q travel.FlightQuery) []travel.Flight {
	flights, err := s.flights.Search(ctx, q)
	if err != nil || len(flights) == 0 {
		s.logFallback("flights", q.From+"-"+q.To, err)
		return travel.FallbackFlights(q)
	}
	return flights
}

func (s *SearchService) SearchRestaurants(ctx context.Context, destination string) []travel.Restaurant {
	restaurants, err := s.restaurants.Search(ctx, destination)
	if err != nil || len(restaurants) == 0 {
		s.logFallback("restaurants", destination, err)
		return travel.FallbackRestaurants(destination)
	}
	return restaurants
}

func (s *SearchService) logFallback(kind, query string, err error) {
	attrs := []any{"search", kind, "query", query}
	var ie *integrations.IntegrationError
	if errors.As(err, &ie) {
		attrs = append(attrs, "provider", ie.Provider, "op", ie.Op, "status", ie.StatusCode)
	}
	if err == nil {
		err = integrations.ErrEmptyResult
	}
	s.logger.Warn("search provider failed, serving fallback data", append(attrs, "error", err)...)
}
