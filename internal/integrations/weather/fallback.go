package weather

import (
	"strings"
	"time"
)

var fallbackByCity = map[string]Current{
	"bangkok":    {City: "Bangkok", Temperature: 32, FeelsLike: 37, Humidity: 70, Description: "partly cloudy", WindSpeed: 2.5},
	"chiang mai": {City: "Chiang Mai", Temperature: 27, FeelsLike: 29, Humidity: 60, Description: "clear sky", WindSpeed: 1.8},
	"phuket":     {City: "Phuket", Temperature: 30, FeelsLike: 35, Humidity: 75, Description: "scattered clouds", WindSpeed: 4.1},
	"krabi":      {City: "Krabi", Temperature: 30, FeelsLike: 34, Humidity: 74, Description: "light rain", WindSpeed: 3.2},
	"chiang rai": {City: "Chiang Rai", Temperature: 26, FeelsLike: 27, Humidity: 62, Description: "clear sky", WindSpeed: 1.5},
}

// Fallback returns static weather for city. Unknown cities get a generic tropical reading.
func Fallback(city string) *Current {
	if cur, ok := fallbackByCity[strings.ToLower(strings.TrimSpace(city))]; ok {
		return &cur
	}
	return &Current{City: city, Temperature: 29, FeelsLike: 32, Humidity: 70, Description: "partly cloudy", WindSpeed: 2.0}
}

// FallbackForecast repeats the static reading over the next five days at noon.
func FallbackForecast(city string, now time.Time) []ForecastEntry {
	cur := Fallback(city)
	base := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)
	entries := make([]ForecastEntry, 0, 5)
	for i := 1; i <= 5; i++ {
		entries = append(entries, ForecastEntry{
			Time:            base.AddDate(0, 0, i),
			Temperature:     cur.Temperature,
			Description:     cur.Description,
			RainProbability: 0.2,
		})
	}
	return entries
}
