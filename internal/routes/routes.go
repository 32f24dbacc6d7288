package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"TRAVELPLANNER_BACK-END/internal/auth"
	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/handlers"
	"TRAVELPLANNER_BACK-END/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts. Google may be nil
// when OAuth is not configured.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Google    *handlers.GoogleAuthHandler
	Trips     *handlers.TripsHandler
	Export    *handlers.ExportHandler
	Bookings  *handlers.BookingsHandler
	Expenses  *handlers.ExpensesHandler
	Favorites *handlers.FavoritesHandler
	AI        *handlers.AIHandler
	Payments  *handlers.PaymentsHandler
	Weather   *handlers.WeatherHandler
}

// Options carries what the router needs beyond the handlers themselves.
type Options struct {
	Tokens    *auth.TokenManager
	Revoked   auth.RevocationStore
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Logger    *slog.Logger
}

// NewRouter configures all application routes
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	// Health check routes
	r.Get("/healthz", h.Health.HealthCheck)
	r.Get("/livez", h.Health.LivenessCheck)
	r.Get("/readyz", h.Health.ReadinessCheck)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	requireAuth := middleware.Authenticate(opts.Tokens, opts.Revoked, opts.Logger)
	limited := middleware.RateLimit(opts.RateLimit.RPS, opts.RateLimit.Burst)

	r.Route("/auth", func(r chi.Router) {
		r.With(limited).Post("/register", h.Auth.Register)
		r.With(limited).Post("/login", h.Auth.Login)
		if h.Google != nil {
			r.Get("/google/login", h.Google.GoogleLogin)
			r.Get("/google/callback", h.Google.GoogleCallback)
		}

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.GetProfile)
			r.Patch("/me", h.Auth.UpdateProfile)
		})
	})

	// signature-checked, not bearer-authenticated
	r.Post("/payments/webhook", h.Payments.Webhook)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Route("/trips", func(r chi.Router) {
			r.Post("/", h.Trips.CreateTrip)
			r.Get("/", h.Trips.ListTrips)
			r.Get("/stats", h.Trips.Stats)
			r.Get("/status/{status}", h.Trips.ListByStatus)
			r.Get("/{id}", h.Trips.TripDetail)
			r.Patch("/{id}", h.Trips.UpdateTrip)
			r.Delete("/{id}", h.Trips.DeleteTrip)
			r.Get("/{id}/export", h.Export.Export)
			r.Post("/{id}/export/archive", h.Export.Archive)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.Bookings.CreateBooking)
			r.Get("/search/hotels", h.Bookings.SearchHotels)
			r.Get("/search/flights", h.Bookings.SearchFlights)
			r.Get("/search/restaurants", h.Bookings.SearchRestaurants)
			r.Get("/trip/{tripId}", h.Bookings.ListByTrip)
			r.Get("/trip/{tripId}/type/{type}", h.Bookings.ListByTrip)
			r.Get("/trip/{tripId}/total", h.Bookings.Total)
			r.Get("/trip/{tripId}/summary", h.Bookings.Summary)
			r.Get("/{id}", h.Bookings.GetBooking)
			r.Patch("/{id}", h.Bookings.UpdateBooking)
			r.Delete("/{id}", h.Bookings.DeleteBooking)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", h.Expenses.CreateExpense)
			r.Get("/trip/{tripId}", h.Expenses.ListByTrip)
			r.Get("/trip/{tripId}/total", h.Expenses.Total)
			r.Get("/trip/{tripId}/summary", h.Expenses.Summary)
			r.Get("/{id}", h.Expenses.GetExpense)
			r.Patch("/{id}", h.Expenses.UpdateExpense)
			r.Delete("/{id}", h.Expenses.DeleteExpense)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Post("/", h.Favorites.CreateFavorite)
			r.Get("/", h.Favorites.ListFavorites)
			r.Get("/check/{destination}", h.Favorites.CheckFavorite)
			r.Get("/{id}", h.Favorites.GetFavorite)
			r.Patch("/{id}", h.Favorites.UpdateFavorite)
			r.Delete("/{id}", h.Favorites.DeleteFavorite)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/suggest-destinations", h.AI.SuggestDestinations)
			r.Post("/generate-itinerary", h.AI.GenerateItinerary)
			r.Post("/best-travel-time", h.AI.BestTravelTime)
			r.Post("/chat", h.AI.Chat)
			r.Post("/search-destinations", h.AI.SearchDestinations)
		})

		r.Post("/payments/create-intent", h.Payments.CreateIntent)
		r.Get("/payments/status/{chargeId}", h.Payments.Status)

		r.Get("/weather/current/{city}", h.Weather.Current)
		r.Get("/weather/forecast/{city}", h.Weather.Forecast)
	})

	r.Get("/", rootHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.CORS.AllowedOrigins,
		AllowedMethods:   opts.CORS.AllowedMethods,
		AllowedHeaders:   opts.CORS.AllowedHeaders,
		AllowCredentials: opts.CORS.AllowCredentials,
	})
	return c.Handler(r)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Travel planner backend is running."))
}
