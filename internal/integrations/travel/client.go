// Package travel wraps the RapidAPI hotel, flight and restaurant search providers.
package travel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

var errNoAPIKey = errors.New("rapidapi key not configured")

// Config configures one RapidAPI provider. BaseURL defaults to https://<Host>.
type Config struct {
	APIKey  string
	Host    string
	BaseURL string
	Timeout time.Duration
}

type rapidClient struct {
	provider string
	cfg      Config
	http     *http.Client
}

func newRapidClient(provider string, cfg Config) rapidClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://" + cfg.Host
	}
	return rapidClient{provider: provider, cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

func (c rapidClient) get(ctx context.Context, op, path string, q url.Values, out any) error {
	if c.cfg.APIKey == "" {
		return integrations.NewError(c.provider, op, errNoAPIKey)
	}

	u := strings.TrimRight(c.cfg.BaseURL, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return integrations.NewError(c.provider, op, err)
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.Host)

	return integrations.DoJSON(c.http, req, c.provider, op, out)
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(b)
	return nil
}
