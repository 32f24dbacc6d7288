package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Travel.HotelTimeout)
	assert.Equal(t, 15*time.Second, cfg.Travel.FlightTimeout)
	assert.Equal(t, []string{"promptpay", "truemoney", "rabbit_linepay"}, cfg.Payment.Methods)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.False(t, cfg.IsRedisConfigured())
	assert.False(t, cfg.IsStorageConfigured())
}

func TestLoad_ProviderKeys(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("RAPIDAPI_KEY", "shared")
	t.Setenv("RAPIDAPI_FLIGHT_KEY", "flights-only")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shared", cfg.Travel.HotelAPIKey)
	assert.Equal(t, "flights-only", cfg.Travel.FlightAPIKey)
	assert.Equal(t, "shared", cfg.Travel.RestaurantAPIKey)
}

func TestLoad_MissingPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_UnknownAIProvider(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("AI_PROVIDER", "llama")

	_, err := Load()
	require.Error(t, err)
}

func TestGetStringSliceEnv(t *testing.T) {
	t.Setenv("PAYMENT_METHODS", " card , promptpay,, ")
	assert.Equal(t, []string{"card", "promptpay"}, getStringSliceEnv("PAYMENT_METHODS", nil))

	t.Setenv("PAYMENT_METHODS", " , ")
	assert.Equal(t, []string{"x"}, getStringSliceEnv("PAYMENT_METHODS", []string{"x"}))
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		User: "u", Password: "p", Host: "db", Port: "5432", Name: "travel", SSLMode: "disable", ConnTimeout: 10 * time.Second,
	}}
	assert.Equal(t, "postgres://u:p@db:5432/travel?sslmode=disable&connect_timeout=10", cfg.GetDSN())
}
