package dto

type SuggestDestinationsRequest struct {
	Budget          float64  `json:"budget" validate:"gt=0"`
	Interests       []string `json:"interests"`
	TravelStyle     string   `json:"travelStyle"`
	Duration        int      `json:"duration" validate:"gte=1,lte=60"`
	PreferredSeason string   `json:"preferredSeason,omitempty"`
}

type GenerateItineraryRequest struct {
	Destination string   `json:"destination" validate:"required"`
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     string   `json:"endDate" validate:"required"`
	Budget      float64  `json:"budget" validate:"gte=0"`
	Interests   []string `json:"interests"`
}

type BestTravelTimeRequest struct {
	Destination string `json:"destination" validate:"required"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	Context string `json:"context,omitempty" validate:"max=8000"`
}

type SearchDestinationsRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

// TextResponse wraps free-form model output
type TextResponse struct {
	Text string `json:"text"`
}
