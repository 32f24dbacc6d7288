package travel

import "strings"

// FallbackHotels is the fixed two-hotel list served when hotel search fails.
func FallbackHotels(q HotelQuery) []Hotel {
	dest := strings.TrimSpace(q.Destination)
	currency := currencyOr(q.Currency)
	return []Hotel{
		{
			ID:        "mock-hotel-1",
			Name:      "Grand " + dest + " Hotel",
			Price:     2500,
			Currency:  currency,
			Rating:    8.5,
			Reviews:   1200,
			Address:   dest + " city centre",
			ImageURL:  "https://images.unsplash.com/photo-1566073771259-6a8506099945",
			Amenities: []string{"wifi", "pool", "breakfast"},
		},
		{
			ID:        "mock-hotel-2",
			Name:      dest + " Boutique Resort",
			Price:     1800,
			Currency:  currency,
			Rating:    8.1,
			Reviews:   640,
			Address:   dest + " old town",
			ImageURL:  "https://images.unsplash.com/photo-1582719508461-905c673771fd",
			Amenities: []string{"wifi", "parking"},
		},
	}
}

func FallbackFlights(q FlightQuery) []Flight {
	from, to := strings.ToUpper(q.From), strings.ToUpper(q.To)
	currency := currencyOr(q.Currency)
	return []Flight{
		{
			ID: "mock-flight-1", Airline: "Thai Airways", From: from, To: to,
			DepartureTime: q.Date + "T08:00:00", ArrivalTime: q.Date + "T09:15:00",
			DurationMinutes: 75, Stops: 0, Price: 2890, Currency: currency,
		},
		{
			ID: "mock-flight-2", Airline: "Bangkok Airways", From: from, To: to,
			DepartureTime: q.Date + "T12:30:00", ArrivalTime: q.Date + "T13:50:00",
			DurationMinutes: 80, Stops: 0, Price: 2450, Currency: currency,
		},
		{
			ID: "mock-flight-3", Airline: "AirAsia", From: from, To: to,
			DepartureTime: q.Date + "T18:45:00", ArrivalTime: q.Date + "T20:00:00",
			DurationMinutes: 75, Stops: 0, Price: 1290, Currency: currency,
		},
	}
}

func FallbackRestaurants(destination string) []Restaurant {
	return []Restaurant{
		{
			ID: "mock-restaurant-1", Name: "Baan " + destination, Rating: 4.5, Reviews: 820,
			PriceRange: "฿฿", Cuisine: []string{"Thai", "Local"}, IsOpenNow: true, Destination: destination,
		},
		{
			ID: "mock-restaurant-2", Name: destination + " Night Market", Rating: 4.3, Reviews: 1530,
			PriceRange: "฿", Cuisine: []string{"Street food"}, IsOpenNow: true, Destination: destination,
		},
		{
			ID: "mock-restaurant-3", Name: "The " + destination + " Terrace", Rating: 4.6, Reviews: 410,
			PriceRange: "฿฿฿", Cuisine: []string{"International", "Seafood"}, IsOpenNow: false, Destination: destination,
		},
	}
}
