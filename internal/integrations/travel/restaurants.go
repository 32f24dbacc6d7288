package travel

import (
	"context"
	"fmt"
	"net/url"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

const restaurantProvider = "tripadvisor"

type Restaurant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	PriceRange  string   `json:"priceRange,omitempty"`
	Cuisine     []string `json:"cuisine,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	IsOpenNow   bool     `json:"isOpenNow"`
	Destination string   `json:"destination"`
}

type RestaurantClient struct {
	rapidClient
}

func NewRestaurantClient(cfg Config) *RestaurantClient {
	return &RestaurantClient{rapidClient: newRapidClient(restaurantProvider, cfg)}
}

type restaurantLocationResponse struct {
	Data []struct {
		LocationID    flexString `json:"locationId"`
		LocalizedName string     `json:"localizedName"`
	} `json:"data"`
}

type restaurantSearchResponse struct {
	Data struct {
		Data []struct {
			RestaurantsID                   flexString `json:"restaurantsId"`
			Name                            string     `json:"name"`
			AverageRating                   float64    `json:"averageRating"`
			UserReviewCount                 int        `json:"userReviewCount"`
			PriceTag                        string     `json:"priceTag"`
			EstablishmentTypeAndCuisineTags []string   `json:"establishmentTypeAndCuisineTags"`
			HeroImgURL                      string     `json:"heroImgUrl"`
			CurrentOpenStatusCategory       string     `json:"currentOpenStatusCategory"`
		} `json:"data"`
	} `json:"data"`
}

// Search resolves destination to a location id before listing restaurants.
func (c *RestaurantClient) Search(ctx context.Context, destination string) ([]Restaurant, error) {
	var loc restaurantLocationResponse
	if err := c.get(ctx, "lookup", "/api/v1/restaurant/searchLocation", url.Values{"query": {destination}}, &loc); err != nil {
		return nil, err
	}
	var locationID string
	for _, l := range loc.Data {
		if l.LocationID != "" {
			locationID = string(l.LocationID)
			break
		}
	}
	if locationID == "" {
		return nil, integrations.NewError(restaurantProvider, "lookup",
			fmt.Errorf("destination %q: %w", destination, integrations.ErrEmptyResult))
	}

	var raw restaurantSearchResponse
	if err := c.get(ctx, "search", "/api/v1/restaurant/searchRestaurants", url.Values{"locationId": {locationID}}, &raw); err != nil {
		return nil, err
	}

	restaurants := make([]Restaurant, 0, len(raw.Data.Data))
	for _, r := range raw.Data.Data {
		restaurants = append(restaurants, Restaurant{
			ID:          string(r.RestaurantsID),
			Name:        r.Name,
			Rating:      r.AverageRating,
			Reviews:     r.UserReviewCount,
			PriceRange:  r.PriceTag,
			Cuisine:     r.EstablishmentTypeAndCuisineTags,
			ImageURL:    r.HeroImgURL,
			IsOpenNow:   r.CurrentOpenStatusCategory == "OPEN",
			Destination: destination,
		})
	}
	if len(restaurants) == 0 {
		return nil, integrations.NewError(restaurantProvider, "search", integrations.ErrEmptyResult)
	}
	return restaurants, nil
}
