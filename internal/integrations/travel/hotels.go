package travel

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

const hotelProvider = "booking.com"

type HotelQuery struct {
	Destination string
	CheckIn     string // YYYY-MM-DD
	CheckOut    string // YYYY-MM-DD
	Adults      int
	Rooms       int
	Currency    string
}

type Hotel struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Currency  string   `json:"currency"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Address   string   `json:"address,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

type HotelClient struct {
	rapidClient
}

func NewHotelClient(cfg Config) *HotelClient {
	return &HotelClient{rapidClient: newRapidClient(hotelProvider, cfg)}
}

type hotelDestinationResponse struct {
	Data []struct {
		DestID     flexString `json:"dest_id"`
		SearchType string     `json:"search_type"`
		Name       string     `json:"name"`
	} `json:"data"`
}

type hotelSearchResponse struct {
	Data struct {
		Hotels []struct {
			HotelID  flexString `json:"hotel_id"`
			Property struct {
				Name           string   `json:"name"`
				ReviewScore    float64  `json:"reviewScore"`
				ReviewCount    int      `json:"reviewCount"`
				WishlistName   string   `json:"wishlistName"`
				PhotoUrls      []string `json:"photoUrls"`
				PriceBreakdown struct {
					GrossPrice struct {
						Value    float64 `json:"value"`
						Currency string  `json:"currency"`
					} `json:"grossPrice"`
				} `json:"priceBreakdown"`
			} `json:"property"`
		} `json:"hotels"`
	} `json:"data"`
}

// Search resolves the destination first. An unresolvable destination returns
// ErrEmptyResult without calling the hotel search.
func (c *HotelClient) Search(ctx context.Context, q HotelQuery) ([]Hotel, error) {
	destID, searchType, err := c.lookupDestination(ctx, q.Destination)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("dest_id", destID)
	params.Set("search_type", searchType)
	params.Set("arrival_date", q.CheckIn)
	params.Set("departure_date", q.CheckOut)
	params.Set("adults", strconv.Itoa(max(q.Adults, 1)))
	params.Set("room_qty", strconv.Itoa(max(q.Rooms, 1)))
	params.Set("currency_code", currencyOr(q.Currency))

	var raw hotelSearchResponse
	if err := c.get(ctx, "search", "/api/v1/hotels/searchHotels", params, &raw); err != nil {
		return nil, err
	}

	hotels := make([]Hotel, 0, len(raw.Data.Hotels))
	for _, h := range raw.Data.Hotels {
		p := h.Property
		hotel := Hotel{
			ID:       string(h.HotelID),
			Name:     p.Name,
			Price:    p.PriceBreakdown.GrossPrice.Value,
			Currency: p.PriceBreakdown.GrossPrice.Currency,
			Rating:   p.ReviewScore,
			Reviews:  p.ReviewCount,
			Address:  p.WishlistName,
		}
		if hotel.Currency == "" {
			hotel.Currency = currencyOr(q.Currency)
		}
		if len(p.PhotoUrls) > 0 {
			hotel.ImageURL = p.PhotoUrls[0]
		}
		hotels = append(hotels, hotel)
	}
	if len(hotels) == 0 {
		return nil, integrations.NewError(hotelProvider, "search", integrations.ErrEmptyResult)
	}
	return hotels, nil
}

func (c *HotelClient) lookupDestination(ctx context.Context, destination string) (string, string, error) {
	var raw hotelDestinationResponse
	if err := c.get(ctx, "lookup", "/api/v1/hotels/searchDestination", url.Values{"query": {destination}}, &raw); err != nil {
		return "", "", err
	}
	for _, d := range raw.Data {
		if d.DestID != "" {
			searchType := d.SearchType
			if searchType == "" {
				searchType = "CITY"
			}
			return string(d.DestID), searchType, nil
		}
	}
	return "", "", integrations.NewError(hotelProvider, "lookup",
		fmt.Errorf("destination %q: %w", destination, integrations.ErrEmptyResult))
}

func currencyOr(c string) string {
	if c == "" {
		return "THB"
	}
	return c
}
