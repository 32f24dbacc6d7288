package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	GoogleOAuth GoogleOAuthConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Log         LogConfig

	// Outbound integrations
	AI      AIConfig
	Weather WeatherConfig
	Travel  TravelConfig
	Payment PaymentConfig
	Redis   RedisConfig
	Storage StorageConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	FrontendURL     string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int32
	MinConns     int32
	MaxLifetime  time.Duration
	ConnTimeout  time.Duration
	QueryTimeout time.Duration
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret         string
	Issuer         string
	AccessTokenTTL time.Duration
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// RateLimitConfig controls the per-IP limiter on credential endpoints
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type LogConfig struct {
	Level  string
	Format string // text | json
}

// AIConfig selects and configures the text-generation provider
type AIConfig struct {
	Provider          string // gemini | huggingface
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string // empty uses the SDK default
	HuggingFaceAPIKey string
	HuggingFaceModel  string
	HuggingFaceURL    string
	Temperature       float64
	Timeout           time.Duration
}

// WeatherConfig holds OpenWeatherMap settings
type WeatherConfig struct {
	APIKey   string
	BaseURL  string
	Units    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// TravelConfig holds RapidAPI search provider settings. The per-provider
// keys default to RapidAPIKey.
type TravelConfig struct {
	RapidAPIKey       string
	HotelAPIKey       string
	FlightAPIKey      string
	RestaurantAPIKey  string
	HotelHost         string
	FlightHost        string
	RestaurantHost    string
	HotelTimeout      time.Duration
	FlightTimeout     time.Duration
	RestaurantTimeout time.Duration
}

// PaymentConfig holds Omise gateway settings
type PaymentConfig struct {
	SecretKey     string
	PublicKey     string
	BaseURL       string
	WebhookSecret string
	Methods       []string
	Currency      string
	ReturnURI     string
	Timeout       time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig holds S3 settings for exported itineraries
type StorageConfig struct {
	Bucket     string
	Region     string
	Endpoint   string
	AccessKey  string
	SecretKey  string
	PresignTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load("../.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			slog.Warn(".env file not found, using process environment", "error", err)
		}
	}

	rapidKey := getEnv("RAPIDAPI_KEY", "")
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "postgres"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxConns:     getInt32Env("DB_MAX_CONNS", 5),
			MinConns:     getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout:  getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
		},
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			Issuer:         getEnv("JWT_ISSUER", "travelplanner"),
			AccessTokenTTL: getDurationEnv("JWT_ACCESS_TTL", 7*24*time.Hour), // 7 days
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		RateLimit: RateLimitConfig{
			RPS:   getFloatEnv("AUTH_RATE_LIMIT_RPS", 5),
			Burst: getIntEnv("AUTH_RATE_LIMIT_BURST", 10),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		AI: AIConfig{
			Provider:          strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
			GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
			GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			GeminiBaseURL:     getEnv("GEMINI_BASE_URL", ""),
			HuggingFaceAPIKey: getEnv("HUGGINGFACE_API_KEY", ""),
			HuggingFaceModel:  getEnv("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.3"),
			HuggingFaceURL:    getEnv("HF_BASE_URL", "https://api-inference.huggingface.co/models"),
			Temperature:       getFloatEnv("AI_TEMPERATURE", 0.7),
			Timeout:           getDurationEnv("AI_TIMEOUT", 0),
		},
		Weather: WeatherConfig{
			APIKey:   getEnv("OPENWEATHER_API_KEY", ""),
			BaseURL:  getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			Units:    getEnv("OPENWEATHER_UNITS", "metric"),
			Timeout:  getDurationEnv("OPENWEATHER_TIMEOUT", 0),
			CacheTTL: getDurationEnv("OPENWEATHER_CACHE_TTL", 10*time.Minute),
		},
		Travel: TravelConfig{
			RapidAPIKey:       rapidKey,
			HotelAPIKey:       getEnv("RAPIDAPI_HOTEL_KEY", rapidKey),
			FlightAPIKey:      getEnv("RAPIDAPI_FLIGHT_KEY", rapidKey),
			RestaurantAPIKey:  getEnv("RAPIDAPI_RESTAURANT_KEY", rapidKey),
			HotelHost:         getEnv("RAPIDAPI_HOTEL_HOST", "booking-com15.p.rapidapi.com"),
			FlightHost:        getEnv("RAPIDAPI_FLIGHT_HOST", "sky-scrapper.p.rapidapi.com"),
			RestaurantHost:    getEnv("RAPIDAPI_RESTAURANT_HOST", "tripadvisor16.p.rapidapi.com"),
			HotelTimeout:      getDurationEnv("HOTEL_SEARCH_TIMEOUT", 10*time.Second),
			FlightTimeout:     getDurationEnv("FLIGHT_SEARCH_TIMEOUT", 15*time.Second),
			RestaurantTimeout: getDurationEnv("RESTAURANT_SEARCH_TIMEOUT", 20*time.Second),
		},
		Payment: PaymentConfig{
			SecretKey:     getEnv("OMISE_SECRET_KEY", ""),
			PublicKey:     getEnv("OMISE_PUBLIC_KEY", ""),
			BaseURL:       getEnv("OMISE_BASE_URL", "https://api.omise.co"),
			WebhookSecret: getEnv("OMISE_WEBHOOK_SECRET", ""),
			Methods:       getStringSliceEnv("PAYMENT_METHODS", []string{"promptpay", "truemoney", "rabbit_linepay"}),
			Currency:      strings.ToLower(getEnv("PAYMENT_CURRENCY", "thb")),
			ReturnURI:     getEnv("PAYMENT_RETURN_URI", "http://localhost:3000/payments/complete"),
			Timeout:       getDurationEnv("OMISE_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Bucket:     getEnv("S3_BUCKET", ""),
			Region:     getEnv("S3_REGION", "ap-southeast-1"),
			Endpoint:   getEnv("S3_ENDPOINT", ""),
			AccessKey:  getEnv("S3_ACCESS_KEY", ""),
			SecretKey:  getEnv("S3_SECRET_KEY", ""),
			PresignTTL: getDurationEnv("S3_PRESIGN_TTL", 15*time.Minute),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.AI.Provider != "gemini" && c.AI.Provider != "huggingface" {
		return fmt.Errorf("AI_PROVIDER must be gemini or huggingface, got %q", c.AI.Provider)
	}
	if len(c.Payment.Methods) == 0 {
		return fmt.Errorf("PAYMENT_METHODS must list at least one method")
	}

	if c.JWT.Secret == "your-secret-key-change-in-production" {
		slog.Warn("JWT_SECRET is using the default value")
	}
	if !c.IsGoogleOAuthConfigured() {
		slog.Warn("Google OAuth credentials not configured, Google login will not work")
	}
	if c.Payment.WebhookSecret == "" {
		slog.Warn("OMISE_WEBHOOK_SECRET not configured, payment webhooks will be rejected")
	}
	for name, key := range map[string]string{
		"hotel":      c.Travel.HotelAPIKey,
		"flight":     c.Travel.FlightAPIKey,
		"restaurant": c.Travel.RestaurantAPIKey,
	} {
		if key == "" {
			slog.Warn("RapidAPI key not configured, search will serve fallback data", "provider", name)
		}
	}
	if c.Weather.APIKey == "" {
		slog.Warn("OPENWEATHER_API_KEY not configured, weather will use fallback data")
	}

	return nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// IsGoogleOAuthConfigured checks if Google OAuth is properly configured
func (c *Config) IsGoogleOAuthConfigured() bool {
	return c.GoogleOAuth.ClientID != "" && c.GoogleOAuth.ClientSecret != ""
}

func (c *Config) IsRedisConfigured() bool {
	return c.Redis.Addr != ""
}

// IsStorageConfigured reports whether itinerary archives can be uploaded
func (c *Config) IsStorageConfigured() bool {
	return c.Storage.Bucket != "" && c.Storage.AccessKey != "" && c.Storage.SecretKey != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return defaultValue
	}
	return parts
}
