package omise

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	SignatureHeader = "Omise-Signature"
	TimestampHeader = "Omise-Signature-Timestamp"

	EventChargeComplete = "charge.complete"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// Event is a webhook delivery. Only charge events are decoded.
type Event struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Data Charge `json:"data"`
}

// Verifier checks HMAC-SHA256 signatures over "<timestamp>.<body>".
type Verifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewVerifier takes the base64 webhook secret from the dashboard.
func NewVerifier(encodedSecret string, tolerance time.Duration) (*Verifier, error) {
	if encodedSecret == "" {
		return nil, errors.New("webhook secret not configured")
	}
	secret, err := base64.StdEncoding.DecodeString(encodedSecret)
	if err != nil {
		return nil, fmt.Errorf("decode webhook secret: %w", err)
	}
	return &Verifier{secret: secret, tolerance: tolerance, now: time.Now}, nil
}

// Verify accepts a comma-separated signature header, any entry may match.
func (v *Verifier) Verify(body []byte, signatures, timestamp string) error {
	if signatures == "" || timestamp == "" {
		return ErrInvalidSignature
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	if v.tolerance > 0 {
		age := v.now().Sub(time.Unix(ts, 0))
		if age > v.tolerance || age < -v.tolerance {
			return ErrInvalidSignature
		}
	}

	expected := v.sign(timestamp, body)
	for _, sig := range strings.Split(signatures, ",") {
		got, err := hex.DecodeString(strings.TrimSpace(sig))
		if err != nil {
			continue
		}
		if hmac.Equal(got, expected) {
			return nil
		}
	}
	return ErrInvalidSignature
}

func (v *Verifier) sign(timestamp string, body []byte) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return mac.Sum(nil)
}
