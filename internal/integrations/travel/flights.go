package travel

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

const flightProvider = "skyscanner"

type FlightQuery struct {
	From     string // IATA code
	To       string // IATA code
	Date     string // YYYY-MM-DD
	Adults   int
	Cabin    string
	Currency string
}

type Flight struct {
	ID              string  `json:"id"`
	Airline         string  `json:"airline"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	DepartureTime   string  `json:"departureTime"`
	ArrivalTime     string  `json:"arrivalTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Stops           int     `json:"stops"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
}

type FlightClient struct {
	rapidClient
}

func NewFlightClient(cfg Config) *FlightClient {
	return &FlightClient{rapidClient: newRapidClient(flightProvider, cfg)}
}

type rawItinerary struct {
	ID    flexString `json:"id"`
	Price struct {
		Raw float64 `json:"raw"`
	} `json:"price"`
	Legs []struct {
		Origin struct {
			DisplayCode string `json:"displayCode"`
		} `json:"origin"`
		Destination struct {
			DisplayCode string `json:"displayCode"`
		} `json:"destination"`
		Departure         string `json:"departure"`
		Arrival           string `json:"arrival"`
		DurationInMinutes int    `json:"durationInMinutes"`
		StopCount         int    `json:"stopCount"`
		Carriers          struct {
			Marketing []struct {
				Name string `json:"name"`
			} `json:"marketing"`
		} `json:"carriers"`
	} `json:"legs"`
}

type rawBucket struct {
	ID    string         `json:"id"`
	Items []rawItinerary `json:"items"`
}

type flightSearchResponse struct {
	Data json.RawMessage `json:"data"`
}

func (c *FlightClient) Search(ctx context.Context, q FlightQuery) ([]Flight, error) {
	params := url.Values{}
	params.Set("originSkyId", strings.ToUpper(q.From))
	params.Set("destinationSkyId", strings.ToUpper(q.To))
	params.Set("date", q.Date)
	params.Set("adults", strconv.Itoa(max(q.Adults, 1)))
	params.Set("currency", currencyOr(q.Currency))
	if q.Cabin != "" {
		params.Set("cabinClass", q.Cabin)
	}

	var raw flightSearchResponse
	if err := c.get(ctx, "search", "/api/v2/flights/searchFlights", params, &raw); err != nil {
		return nil, err
	}

	items := extractItineraries(raw.Data)
	if len(items) == 0 {
		return nil, integrations.NewError(flightProvider, "search", integrations.ErrEmptyResult)
	}

	currency := currencyOr(q.Currency)
	flights := make([]Flight, 0, len(items))
	for _, it := range items {
		flights = append(flights, normalizeItinerary(it, currency))
	}
	return flights, nil
}

// extractItineraries probes three response shapes in order: a direct
// itinerary list, categorized buckets, then a bare array.
func extractItineraries(data json.RawMessage) []rawItinerary {
	if len(data) == 0 {
		return nil
	}

	var direct struct {
		Itineraries []rawItinerary `json:"itineraries"`
		Buckets     []rawBucket    `json:"buckets"`
	}
	if err := json.Unmarshal(data, &direct); err == nil {
		if len(direct.Itineraries) > 0 {
			return direct.Itineraries
		}
		var fromBuckets []rawItinerary
		seen := map[string]bool{}
		for _, b := range direct.Buckets {
			for _, it := range b.Items {
				// the same itinerary can appear under Best and Cheapest
				if it.ID != "" && seen[string(it.ID)] {
					continue
				}
				seen[string(it.ID)] = true
				fromBuckets = append(fromBuckets, it)
			}
		}
		if len(fromBuckets) > 0 {
			return fromBuckets
		}
	}

	var generic []rawItinerary
	if err := json.Unmarshal(data, &generic); err == nil && len(generic) > 0 {
		return generic
	}
	return nil
}

func normalizeItinerary(it rawItinerary, currency string) Flight {
	f := Flight{ID: string(it.ID), Price: it.Price.Raw, Currency: currency}
	if len(it.Legs) == 0 {
		return f
	}
	leg := it.Legs[0]
	f.From = leg.Origin.DisplayCode
	f.To = leg.Destination.DisplayCode
	f.DepartureTime = leg.Departure
	f.ArrivalTime = leg.Arrival
	f.DurationMinutes = leg.DurationInMinutes
	f.Stops = leg.StopCount
	if len(leg.Carriers.Marketing) > 0 {
		f.Airline = leg.Carriers.Marketing[0].Name
	}
	return f
}
