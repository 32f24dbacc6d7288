// Package omise is a minimal client for the Omise charges API.
package omise

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

const provider = "omise"

var errNoSecretKey = errors.New("omise secret key not configured")

type Config struct {
	SecretKey string
	PublicKey string
	BaseURL   string
	Timeout   time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.omise.co"
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

// ChargeRequest describes a charge in major currency units.
type ChargeRequest struct {
	Amount      decimal.Decimal
	Currency    string
	SourceType  string
	ReturnURI   string
	Description string
	Metadata    map[string]string
}

type ScannableCode struct {
	Image struct {
		DownloadURI string `json:"download_uri"`
	} `json:"image"`
}

type Source struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	ScannableCode *ScannableCode `json:"scannable_code,omitempty"`
}

// Charge mirrors the gateway charge object. Amount is in minor units.
type Charge struct {
	ID             string         `json:"id"`
	Amount         int64          `json:"amount"`
	Currency       string         `json:"currency"`
	Status         string         `json:"status"`
	Paid           bool           `json:"paid"`
	AuthorizeURI   string         `json:"authorize_uri"`
	FailureCode    *string        `json:"failure_code"`
	FailureMessage *string        `json:"failure_message"`
	Metadata       map[string]any `json:"metadata"`
	Source         *Source        `json:"source"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ToMinorUnits converts a major-unit amount to satang, cents, etc.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func ToMajorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

func (c *Client) CreateCharge(ctx context.Context, in ChargeRequest) (*Charge, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(ToMinorUnits(in.Amount), 10))
	form.Set("currency", in.Currency)
	form.Set("source[type]", in.SourceType)
	if in.ReturnURI != "" {
		form.Set("return_uri", in.ReturnURI)
	}
	if in.Description != "" {
		form.Set("description", in.Description)
	}
	for k, v := range in.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	var charge Charge
	if err := c.do(ctx, "create_charge", http.MethodPost, "/charges", form, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) GetCharge(ctx context.Context, chargeID string) (*Charge, error) {
	var charge Charge
	if err := c.do(ctx, "get_charge", http.MethodGet, "/charges/"+url.PathEscape(chargeID), nil, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, form url.Values, out any) error {
	if c.cfg.SecretKey == "" {
		return integrations.NewError(provider, op, errNoSecretKey)
	}

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.cfg.BaseURL, "/")+path, body)
	if err != nil {
		return integrations.NewError(provider, op, err)
	}
	req.SetBasicAuth(c.cfg.SecretKey, "")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return integrations.DoJSON(c.http, req, provider, op, out)
}
