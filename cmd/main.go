// @title Travel Planner Backend API
// @version 1.0
// @description Trip planning, bookings, expenses, AI travel advice and payments.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	_ "TRAVELPLANNER_BACK-END/docs" // This is required for swagger
	"TRAVELPLANNER_BACK-END/internal/auth"
	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/database"
	"TRAVELPLANNER_BACK-END/internal/handlers"
	"TRAVELPLANNER_BACK-END/internal/integrations/llm"
	"TRAVELPLANNER_BACK-END/internal/integrations/omise"
	"TRAVELPLANNER_BACK-END/internal/integrations/storage"
	"TRAVELPLANNER_BACK-END/internal/integrations/travel"
	"TRAVELPLANNER_BACK-END/internal/integrations/weather"
	"TRAVELPLANNER_BACK-END/internal/repository"
	"TRAVELPLANNER_BACK-END/internal/routes"
	"TRAVELPLANNER_BACK-END/internal/services"
)

const webhookTolerance = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := database.OpenDB(pool)
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	// --- Integrations ---
	weatherClient := weather.NewClient(weather.Config{
		APIKey:   cfg.Weather.APIKey,
		BaseURL:  cfg.Weather.BaseURL,
		Units:    cfg.Weather.Units,
		Timeout:  cfg.Weather.Timeout,
		CacheTTL: cfg.Weather.CacheTTL,
	})
	generator, err := llm.New(ctx, cfg.AI)
	if err != nil {
		return err
	}
	hotels := travel.NewHotelClient(travel.Config{APIKey: cfg.Travel.HotelAPIKey, Host: cfg.Travel.HotelHost, Timeout: cfg.Travel.HotelTimeout})
	flights := travel.NewFlightClient(travel.Config{APIKey: cfg.Travel.FlightAPIKey, Host: cfg.Travel.FlightHost, Timeout: cfg.Travel.FlightTimeout})
	restaurants := travel.NewRestaurantClient(travel.Config{APIKey: cfg.Travel.RestaurantAPIKey, Host: cfg.Travel.RestaurantHost, Timeout: cfg.Travel.RestaurantTimeout})
	gateway := omise.NewClient(omise.Config{
		SecretKey: cfg.Payment.SecretKey,
		PublicKey: cfg.Payment.PublicKey,
		BaseURL:   cfg.Payment.BaseURL,
		Timeout:   cfg.Payment.Timeout,
	})

	// nil interfaces, not typed nil pointers, signal an unconfigured dependency
	var verifier services.SignatureVerifier
	if cfg.Payment.WebhookSecret != "" {
		v, err := omise.NewVerifier(cfg.Payment.WebhookSecret, webhookTolerance)
		if err != nil {
			return err
		}
		verifier = v
	} else {
		logger.Warn("OMISE_WEBHOOK_SECRET not set, payment webhooks will be rejected")
	}

	var objects services.ObjectStore
	if cfg.IsStorageConfigured() {
		s3Store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		objects = s3Store
	}

	var revoked auth.RevocationStore
	if cfg.IsRedisConfigured() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		revoked = auth.NewRedisRevocationStore(rdb)
	} else {
		revoked = auth.NewMemoryRevocationStore()
	}

	// --- Repositories and services ---
	users := repository.NewUserRepository(db)
	trips := repository.NewTripRepository(db)
	bookings := repository.NewBookingRepository(db)
	expenses := repository.NewExpenseRepository(db)
	favorites := repository.NewFavoriteRepository(db)

	tokens := auth.NewTokenManager(cfg.JWT)
	authSvc := services.NewAuthService(users, tokens, revoked, logger)
	weatherSvc := services.NewWeatherService(weatherClient, logger)

	// --- HTTP Handlers ---
	h := routes.Handlers{
		Health:    handlers.NewHealthHandler(pool),
		Auth:      handlers.NewAuthHandler(authSvc, services.NewUserService(users), logger),
		Trips:     handlers.NewTripsHandler(services.NewTripService(trips), logger),
		Export:    handlers.NewExportHandler(services.NewExportService(trips, bookings, expenses, objects, logger), logger),
		Bookings:  handlers.NewBookingsHandler(services.NewBookingService(trips, bookings), services.NewSearchService(hotels, flights, restaurants, logger), logger),
		Expenses:  handlers.NewExpensesHandler(services.NewExpenseService(trips, expenses), logger),
		Favorites: handlers.NewFavoritesHandler(services.NewFavoriteService(favorites), logger),
		AI:        handlers.NewAIHandler(services.NewAIService(generator, weatherSvc, logger), logger),
		Payments: handlers.NewPaymentsHandler(services.NewPaymentService(bookings, gateway, verifier, services.PaymentSettings{
			Methods:   cfg.Payment.Methods,
			Currency:  cfg.Payment.Currency,
			ReturnURI: cfg.Payment.ReturnURI,
		}, logger), logger),
		Weather: handlers.NewWeatherHandler(weatherSvc, logger),
	}
	if cfg.IsGoogleOAuthConfigured() {
		h.Google = handlers.NewGoogleAuthHandler(cfg.GoogleOAuth, cfg.Server.FrontendURL, authSvc, logger)
	} else {
		logger.Info("Google OAuth not configured, /auth/google routes disabled")
	}

	router := routes.NewRouter(h, routes.Options{
		Tokens:    tokens,
		Revoked:   revoked,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	})

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
