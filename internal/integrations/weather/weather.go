// Package weather wraps the OpenWeatherMap current and forecast endpoints.
package weather

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

const provider = "openweathermap"

var errNoAPIKey = errors.New("api key not configured")

type Config struct {
	APIKey   string
	BaseURL  string
	Units    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Current is the normalized current weather for a city
type Current struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"windSpeed"`
}

// ForecastEntry is one 3-hour slot of the 5-day forecast
type ForecastEntry struct {
	Time            time.Time `json:"time"`
	Temperature     float64   `json:"temperature"`
	Description     string    `json:"description"`
	RainProbability float64   `json:"rainProbability"`
}

type Client struct {
	cfg   Config
	http  *http.Client
	cache *cache.Cache
}

func NewClient(cfg Config) *Client {
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		cache: cache.New(ttl, 2*ttl),
	}
}

type owmCondition struct {
	Description string `json:"description"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type owmCurrent struct {
	Name    string         `json:"name"`
	Main    owmMain        `json:"main"`
	Weather []owmCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type owmForecast struct {
	List []struct {
		Dt      int64          `json:"dt"`
		Main    owmMain        `json:"main"`
		Weather []owmCondition `json:"weather"`
		Pop     float64        `json:"pop"`
	} `json:"list"`
}

// Current returns the current weather for city, served from cache when fresh.
func (c *Client) Current(ctx context.Context, city string) (*Current, error) {
	key := "current:" + strings.ToLower(city)
	if v, ok := c.cache.Get(key); ok {
		return v.(*Current), nil
	}

	var raw owmCurrent
	if err := c.get(ctx, "current", "/weather", city, &raw); err != nil {
		return nil, err
	}

	cur := &Current{
		City:        raw.Name,
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
	}
	if cur.City == "" {
		cur.City = city
	}
	if len(raw.Weather) > 0 {
		cur.Description = raw.Weather[0].Description
	}

	c.cache.Set(key, cur, cache.DefaultExpiration)
	return cur, nil
}

// Forecast returns the 5-day forecast in 3-hour slots.
func (c *Client) Forecast(ctx context.Context, city string) ([]ForecastEntry, error) {
	key := "forecast:" + strings.ToLower(city)
	if v, ok := c.cache.Get(key); ok {
		return v.([]ForecastEntry), nil
	}

	var raw owmForecast
	if err := c.get(ctx, "forecast", "/forecast", city, &raw); err != nil {
		return nil, err
	}
	if len(raw.List) == 0 {
		return nil, integrations.NewError(provider, "forecast", integrations.ErrEmptyResult)
	}

	entries := make([]ForecastEntry, 0, len(raw.List))
	for _, item := range raw.List {
		e := ForecastEntry{
			Time:            time.Unix(item.Dt, 0).UTC(),
			Temperature:     item.Main.Temp,
			RainProbability: item.Pop,
		}
		if len(item.Weather) > 0 {
			e.Description = item.Weather[0].Description
		}
		entries = append(entries, e)
	}

	c.cache.Set(key, entries, cache.DefaultExpiration)
	return entries, nil
}

func (c *Client) get(ctx context.Context, op, path, city string, out any) error {
	if c.cfg.APIKey == "" {
		return integrations.NewError(provider, op, errNoAPIKey)
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", c.cfg.Units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.cfg.BaseURL, "/")+path+"?"+q.Encode(), nil)
	if err != nil {
		return integrations.NewError(provider, op, err)
	}
	return integrations.DoJSON(c.http, req, provider, op, out)
}
