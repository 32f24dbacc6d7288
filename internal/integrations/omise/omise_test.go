package omise

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

func TestCreateCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/charges", r.URL.Path)
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "skey_test", user)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "350050", r.PostForm.Get("amount"))
		assert.Equal(t, "thb", r.PostForm.Get("currency"))
		assert.Equal(t, "promptpay", r.PostForm.Get("source[type]"))
		assert.Equal(t, "b-1", r.PostForm.Get("metadata[bookingId]"))

		w.Write([]byte(`{"id":"chrg_test_1","amount":350050,"currency":"thb","status":"pending","paid":false,
			"source":{"type":"promptpay","scannable_code":{"image":{"download_uri":"https://qr"}}}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{SecretKey: "skey_test", BaseURL: srv.URL})
	charge, err := c.CreateCharge(context.Background(), ChargeRequest{
		Amount:     decimal.RequireFromString("3500.50"),
		Currency:   "thb",
		SourceType: "promptpay",
		Metadata:   map[string]string{"bookingId": "b-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "chrg_test_1", charge.ID)
	assert.Equal(t, "https://qr", charge.Source.ScannableCode.Image.DownloadURI)
}

func TestCreateCharge_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"object":"error","code":"invalid_source","message":"source type not supported"}`))
	}))
	defer srv.Close()

	_, err := NewClient(Config{SecretKey: "skey_test", BaseURL: srv.URL}).
		CreateCharge(context.Background(), ChargeRequest{Amount: decimal.NewFromInt(100), Currency: "thb", SourceType: "truemoney"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source type not supported")
}

func TestGetCharge_NoKey(t *testing.T) {
	_, err := NewClient(Config{}).GetCharge(context.Background(), "chrg_1")
	var ie *integrations.IntegrationError
	assert.ErrorAs(t, err, &ie)
}

func TestUnitConversion(t *testing.T) {
	assert.Equal(t, int64(700000), ToMinorUnits(decimal.NewFromInt(7000)))
	assert.Equal(t, int64(1999), ToMinorUnits(decimal.RequireFromString("19.99")))
	assert.True(t, ToMajorUnits(350050).Equal(decimal.RequireFromString("3500.5")))
}

func signFor(secret []byte, ts string, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(ts + "." + string(body)))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifier(t *testing.T) {
	secret := []byte("whsec-raw")
	v, err := NewVerifier(base64.StdEncoding.EncodeToString(secret), 5*time.Minute)
	require.NoError(t, err)

	now := time.Unix(1767225600, 0)
	v.now = func() time.Time { return now }
	ts := strconv.FormatInt(now.Unix(), 10)
	body := []byte(`{"key":"charge.complete"}`)
	sig := signFor(secret, ts, body)

	assert.NoError(t, v.Verify(body, sig, ts))
	assert.NoError(t, v.Verify(body, "deadbeef,"+sig, ts), "rotated secrets send several signatures")
	assert.ErrorIs(t, v.Verify([]byte(`{"key":"charge.create"}`), sig, ts), ErrInvalidSignature)
	assert.ErrorIs(t, v.Verify(body, "", ts), ErrInvalidSignature)
	assert.ErrorIs(t, v.Verify(body, sig, "not-a-number"), ErrInvalidSignature)

	old := strconv.FormatInt(now.Add(-10*time.Minute).Unix(), 10)
	assert.ErrorIs(t, v.Verify(body, signFor(secret, old, body), old), ErrInvalidSignature)
}

func TestNewVerifier_Errors(t *testing.T) {
	_, err := NewVerifier("", time.Minute)
	assert.Error(t, err)
	_, err = NewVerifier("%%%", time.Minute)
	assert.Error(t, err)
}
