package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/integrations/llm"
	"TRAVELPLANNER_BACK-END/internal/integrations/weather"
)

// ReferenceCities are sampled for weather context when suggesting destinations.
var ReferenceCities = []string{"Bangkok", "Chiang Mai", "Phuket", "Krabi", "Chiang Rai"}

const (
	maxSearchResults = 5

	advisorSystemPrompt = "You are an expert Thai travel advisor. Answer in Thai unless the user writes in another language."
	jsonSystemPrompt    = advisorSystemPrompt + " Respond with a JSON array only, without commentary or code fences."
)

type DestinationRequest struct {
	Budget          float64
	Interests       []string
	TravelStyle     string
	Duration        int
	PreferredSeason string
}

type DestinationSuggestion struct {
	Destination     string   `json:"destination"`
	Country         string   `json:"country"`
	Description     string   `json:"description"`
	EstimatedBudget float64  `json:"estimatedBudget"`
	Duration        int      `json:"duration"`
	Highlights      []string `json:"highlights"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	Weather         string   `json:"weather,omitempty"`
}

type ItineraryRequest struct {
	Destination string
	StartDate   string
	EndDate     string
	Budget      float64
	Interests   []string
}

type DestinationCandidate struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

// fallbackSuggestions replace model output that is unparseable or repeats a destination.
var fallbackSuggestions = []DestinationSuggestion{
	{
		Destination:     "เชียงใหม่",
		Country:         "ประเทศไทย",
		Description:     "เมืองเก่าล้านนา วัดวาอาราม ดอยสุเทพ และอากาศเย็นสบายช่วงปลายปี",
		EstimatedBudget: 8000,
		Duration:        3,
		Highlights:      []string{"ดอยสุเทพ", "ถนนคนเดินวันอาทิตย์", "นิมมานเหมินท์"},
		BestTimeToVisit: "พฤศจิกายน - กุมภาพันธ์",
	},
	{
		Destination:     "กระบี่",
		Country:         "ประเทศไทย",
		Description:     "ทะเลอันดามัน หาดทรายขาว และเกาะสวยสำหรับดำน้ำตื้น",
		EstimatedBudget: 12000,
		Duration:        4,
		Highlights:      []string{"อ่าวนาง", "เกาะพีพี", "ทะเลแหวก"},
		BestTimeToVisit: "พฤศจิกายน - เมษายน",
	},
	{
		Destination:     "เชียงราย",
		Country:         "ประเทศไทย",
		Description:     "วัดร่องขุ่น ไร่ชา และวิวภูเขาทางเหนือสุดของประเทศ",
		EstimatedBudget: 7000,
		Duration:        3,
		Highlights:      []string{"วัดร่องขุ่น", "ดอยตุง", "ไร่ชาฉุยฟง"},
		BestTimeToVisit: "ตุลาคม - มีนาคม",
	},
}

// FallbackSuggestions returns a copy of the fixed suggestion set.
func FallbackSuggestions() []DestinationSuggestion {
	out := make([]DestinationSuggestion, len(fallbackSuggestions))
	copy(out, fallbackSuggestions)
	return out
}

// AIService builds prompts for the text generator and validates what comes back.
// Generation failures propagate; only malformed output falls back.
type AIService struct {
	gen     llm.Generator
	weather *WeatherService
	logger  *slog.Logger
}

func NewAIService(gen llm.Generator, weather *WeatherService, logger *slog.Logger) *AIService {
	return &AIService{gen: gen, weather: weather, logger: logger}
}

func (s *AIService) SuggestDestinations(ctx context.Context, req DestinationRequest) ([]DestinationSuggestion, error) {
	reports, err := s.referenceWeather(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.generate(ctx, jsonSystemPrompt, destinationPrompt(req, reports))
	if err != nil {
		return nil, err
	}

	var suggestions []DestinationSuggestion
	if err := decodeJSONArray(raw, &suggestions); err != nil || len(suggestions) == 0 {
		s.logger.Warn("could not parse destination suggestions, using fallback", "error", err)
		return FallbackSuggestions(), nil
	}
	if dup, ok := firstDuplicate(suggestions, func(d DestinationSuggestion) string { return d.Destination }); ok {
		s.logger.Warn("model repeated a destination, using fallback", "destination", dup)
		return FallbackSuggestions(), nil
	}

	for _, sg := range suggestions {
		if req.Budget > 0 && sg.EstimatedBudget > req.Budget {
			s.logger.Warn("suggestion exceeds requested budget",
				"destination", sg.Destination, "estimated", sg.EstimatedBudget, "budget", req.Budget)
		}
	}
	return suggestions, nil
}

// referenceWeather fetches all reference cities concurrently. Each city falls back on its own.
func (s *AIService) referenceWeather(ctx context.Context) ([]*weather.Current, error) {
	reports := make([]*weather.Current, len(ReferenceCities))
	g, gctx := errgroup.WithContext(ctx)
	for i, city := range ReferenceCities {
		g.Go(func() error {
			reports[i] = s.weather.Current(gctx, city)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperr.Internal("failed to load weather", err)
	}
	return reports, nil
}

func (s *AIService) GenerateItinerary(ctx context.Context, req ItineraryRequest) (string, error) {
	prompt := fmt.Sprintf(`Create a day-by-day travel itinerary for %s from %s to %s.
Total budget: %.0f THB.
Interests: %s.
For each day list morning, afternoon and evening activities with estimated costs, and finish with money-saving tips.`,
		req.Destination, req.StartDate, req.EndDate, req.Budget, joinOr(req.Interests, "general sightseeing"))
	return s.generate(ctx, advisorSystemPrompt, prompt)
}

func (s *AIService) SuggestBestTravelTime(ctx context.Context, destination string) (string, error) {
	current := s.weather.Current(ctx, destination)
	forecast := s.weather.Forecast(ctx, destination)

	prompt := fmt.Sprintf(`When is the best time of year to visit %s?
Current weather: %s.
Next days: %s.
Cover the seasons, festivals worth timing a visit around, and whether now is a good time to go.`,
		destination, describeWeather(current), forecastOutlook(forecast))
	return s.generate(ctx, advisorSystemPrompt, prompt)
}

// Chat is single-turn; context only extends the system instructions.
func (s *AIService) Chat(ctx context.Context, message, chatContext string) (string, error) {
	system := advisorSystemPrompt
	if c := strings.TrimSpace(chatContext); c != "" {
		system += "\nContext from the user's trip:\n" + c
	}
	return s.generate(ctx, system, message)
}

// SearchDestinations returns at most five unique candidates, or none when the output is unusable.
func (s *AIService) SearchDestinations(ctx context.Context, query string) ([]DestinationCandidate, error) {
	prompt := fmt.Sprintf(`Suggest exactly %d unique travel destinations matching "%s".
Return a JSON array of objects with fields "name", "country" and "description".`, maxSearchResults, query)

	raw, err := s.generate(ctx, jsonSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var candidates []DestinationCandidate
	if err := decodeJSONArray(raw, &candidates); err != nil {
		s.logger.Warn("could not parse destination search results", "query", query, "error", err)
		return []DestinationCandidate{}, nil
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]DestinationCandidate, 0, maxSearchResults)
	for _, c := range candidates {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
		if len(out) == maxSearchResults {
			break
		}
	}
	return out, nil
}

func (s *AIService) generate(ctx context.Context, system, prompt string) (string, error) {
	text, err := s.gen.Generate(ctx, system, prompt)
	if err != nil {
		return "", apperr.Integration("AI generation failed", err)
	}
	return text, nil
}

func destinationPrompt(req DestinationRequest, reports []*weather.Current) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest 3 different travel destinations for a %d-day trip.\n", req.Duration)
	fmt.Fprintf(&b, "Budget tiers (THB): economy %.0f, standard %.0f, premium %.0f.\n",
		req.Budget*0.6, req.Budget*0.8, req.Budget)
	fmt.Fprintf(&b, "Interests: %s.\n", joinOr(req.Interests, "anything"))
	if req.TravelStyle != "" {
		fmt.Fprintf(&b, "Travel style: %s.\n", req.TravelStyle)
	}
	if req.PreferredSeason != "" {
		fmt.Fprintf(&b, "Preferred season: %s.\n", req.PreferredSeason)
	}
	b.WriteString("Current weather:\n")
	for _, w := range reports {
		fmt.Fprintf(&b, "- %s\n", describeWeather(w))
	}
	b.WriteString(`Every destination must be different and the estimated budget must not exceed the premium tier.
Return a JSON array of objects with fields "destination", "country", "description", "estimatedBudget" (number),
"duration" (days), "highlights" (array of strings), "bestTimeToVisit" and "weather".`)
	return b.String()
}

func describeWeather(w *weather.Current) string {
	return fmt.Sprintf("%s %.0f°C, %s, humidity %d%%", w.City, w.Temperature, w.Description, w.Humidity)
}

// forecastOutlook condenses the forecast into one line for prompts.
func forecastOutlook(entries []weather.ForecastEntry) string {
	if len(entries) == 0 {
		return "no forecast available"
	}
	var temp, rain float64
	for _, e := range entries {
		temp += e.Temperature
		rain += e.RainProbability
	}
	n := float64(len(entries))
	outlook := "mostly dry, good for outdoor plans"
	if rain/n >= 0.5 {
		outlook = "rain likely, plan indoor alternatives"
	}
	return fmt.Sprintf("average %.0f°C, %.0f%% chance of rain, %s", temp/n, rain/n*100, outlook)
}

// stripCodeFences removes markdown fences models often wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// decodeJSONArray decodes the outermost [...] span of raw into out.
func decodeJSONArray(raw string, out any) error {
	s := stripCodeFences(raw)
	start, end := strings.Index(s, "["), strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON array in model output")
	}
	return json.Unmarshal([]byte(s[start:end+1]), out)
}

func firstDuplicate[T any](items []T, key func(T) string) (string, bool) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		k := strings.ToLower(strings.TrimSpace(key(it)))
		if _, ok := seen[k]; ok {
			return key(it), true
		}
		seen[k] = struct{}{}
	}
	return "", false
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
