package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/integrations"
	"TRAVELPLANNER_BACK-END/internal/integrations/travel"
	"TRAVELPLANNER_BACK-END/internal/integrations/weather"
)

type stubHotels struct {
	hotels []travel.Hotel
	err    error
}

func (s stubHotels) Search(context.Context, travel.HotelQuery) ([]travel.Hotel, error) {
	return s.hotels, s.err
}

type stubFlights struct{ err error }

func (s stubFlights) Search(context.Context, travel.FlightQuery) ([]travel.Flight, error) {
	return nil, s.err
}

type stubRestaurants struct{}

func (stubRestaurants) Search(context.Context, string) ([]travel.Restaurant, error) {
	return []travel.Restaurant{}, nil
}

func TestSearchService_FallsBack(t *testing.T) {
	ctx := context.Background()
	unresolved := integrations.NewError("booking.com", "search_destination", integrations.ErrEmptyResult)
	svc := NewSearchService(stubHotels{err: unresolved}, stubFlights{err: errors.New("timeout")}, stubRestaurants{}, discardLogger)

	hotels := svc.SearchHotels(ctx, travel.HotelQuery{Destination: "Atlantis"})
	assert.Len(t, hotels, 2)
	assert.Equal(t, travel.FallbackHotels(travel.HotelQuery{Destination: "Atlantis"}), hotels)

	assert.Len(t, svc.SearchFlights(ctx, travel.FlightQuery{From: "BKK", To: "CNX"}), 3)
	assert.Len(t, svc.SearchRestaurants(ctx, "Atlantis"), 3, "empty results fall back too")
}

func TestSearchService_LiveResults(t *testing.T) {
	live := []travel.Hotel{{ID: "1", Name: "Live Hotel"}}
	svc := NewSearchService(stubHotels{hotels: live}, stubFlights{}, stubRestaurants{}, discardLogger)
	assert.Equal(t, live, svc.SearchHotels(context.Background(), travel.HotelQuery{Destination: "Bangkok"}))
}

type stubWeather struct {
	calls atomic.Int32
	fail  bool
}

func (s *stubWeather) Current(_ context.Context, city string) (*weather.Current, error) {
	s.calls.Add(1)
	if s.fail {
		return nil, integrations.NewError("openweathermap", "current", errors.New("down"))
	}
	return &weather.Current{City: city, Temperature: 25, Description: "live", Humidity: 50}, nil
}

func (s *stubWeather) Forecast(_ context.Context, city string) ([]weather.ForecastEntry, error) {
	if s.fail {
		return nil, errors.New("down")
	}
	return []weather.ForecastEntry{{Time: time.Now(), Temperature: 24, RainProbability: 0.9}}, nil
}

func TestWeatherService_Fallback(t *testing.T) {
	svc := NewWeatherService(&stubWeather{fail: true}, discardLogger)
	assert.Equal(t, "Chiang Mai", svc.Current(context.Background(), "chiang mai").City)
	assert.Len(t, svc.Forecast(context.Background(), "Phuket"), 5)
}

type stubGenerator struct {
	reply      string
	err        error
	lastSystem string
	lastPrompt string
}

func (g *stubGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	g.lastSystem, g.lastPrompt = system, prompt
	return g.reply, g.err
}

func newAI(gen *stubGenerator, w *stubWeather) *AIService {
	return NewAIService(gen, NewWeatherService(w, discardLogger), discardLogger)
}

func TestSuggestDestinations_ParsesFencedJSON(t *testing.T) {
	w := &stubWeather{}
	gen := &stubGenerator{reply: "```json\n[" +
		`{"destination":"Nan","country":"Thailand","estimatedBudget":5000,"duration":3},` +
		`{"destination":"Pai","country":"Thailand","estimatedBudget":15000,"duration":3}` +
		"]\n```"}
	got, err := newAI(gen, w).SuggestDestinations(context.Background(), DestinationRequest{Budget: 10000, Duration: 3})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Pai", got[1].Destination, "over-budget options are kept")
	assert.Equal(t, int32(len(ReferenceCities)), w.calls.Load())
	assert.Contains(t, gen.lastPrompt, "economy 6000, standard 8000, premium 10000")
	assert.Contains(t, gen.lastPrompt, "Chiang Rai 25°C")
}

func TestSuggestDestinations_DuplicatesUseFallback(t *testing.T) {
	gen := &stubGenerator{reply: `[{"destination":"Krabi"},{"destination":"krabi "},{"destination":"Nan"}]`}
	got, err := newAI(gen, &stubWeather{}).SuggestDestinations(context.Background(), DestinationRequest{Budget: 1000})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "เชียงใหม่", got[0].Destination)
	assert.Equal(t, "กระบี่", got[1].Destination)
	assert.Equal(t, "เชียงราย", got[2].Destination)
}

func TestSuggestDestinations_UnparseableUsesFallback(t *testing.T) {
	gen := &stubGenerator{reply: "Sorry, I cannot help with that."}
	got, err := newAI(gen, &stubWeather{fail: true}).SuggestDestinations(context.Background(), DestinationRequest{})
	require.NoError(t, err)
	assert.Equal(t, FallbackSuggestions(), got)
}

func TestAI_GenerationErrorPropagates(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	ai := newAI(gen, &stubWeather{})

	_, err := ai.SuggestDestinations(context.Background(), DestinationRequest{})
	assert.Equal(t, apperr.KindIntegration, apperr.KindOf(err))
	_, err = ai.Chat(context.Background(), "hi", "")
	assert.Equal(t, apperr.KindIntegration, apperr.KindOf(err))
}

func TestSearchDestinations(t *testing.T) {
	gen := &stubGenerator{reply: `[{"name":"Nan"},{"name":"Pai"},{"name":"nan"},{"name":"Loei"},{"name":"Trat"},{"name":"Satun"},{"name":"Ranong"}]`}
	got, err := newAI(gen, &stubWeather{}).SearchDestinations(context.Background(), "quiet towns")
	require.NoError(t, err)

	require.Len(t, got, 5)
	assert.Equal(t, []string{"Nan", "Pai", "Loei", "Trat", "Satun"},
		[]string{got[0].Name, got[1].Name, got[2].Name, got[3].Name, got[4].Name})

	gen.reply = "not json"
	got, err = newAI(gen, &stubWeather{}).SearchDestinations(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestChat_InjectsContext(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	reply, err := newAI(gen, &stubWeather{}).Chat(context.Background(), "what to pack?", "Trip to Phuket in May")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Contains(t, gen.lastSystem, "Trip to Phuket in May")
	assert.Equal(t, "what to pack?", gen.lastPrompt)
}

func TestSuggestBestTravelTime_UsesForecast(t *testing.T) {
	gen := &stubGenerator{reply: "November"}
	_, err := newAI(gen, &stubWeather{}).SuggestBestTravelTime(context.Background(), "Phuket")
	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "rain likely")
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[1]`, stripCodeFences("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, stripCodeFences("```\n[1]```"))
	assert.Equal(t, `[1]`, stripCodeFences("  [1] "))
}
