package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aslanbek/weatherdesk/internal/api/handlers"
	"github.com/aslanbek/weatherdesk/internal/auth"
	"github.com/aslanbek/weatherdesk/internal/services"
)

// Deps collects everything the router wires into handlers.
type Deps struct {
	Sessions *auth.Sessions
	Strategy auth.LoginStrategy
	Users    services.UserServiceProvider
	Weather  services.WeatherServiceProvider
	Exchange services.ExchangeRateServiceProvider
	Air      services.AirQualityServiceProvider
	News     handlers.NewsSource
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Attach the session principal (when present) to every request.
	r.Use(deps.Sessions.WithPrincipal)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.Sessions, deps.Strategy, deps.Users)
	weatherHandler := handlers.NewWeatherHandler(deps.Weather)
	exchangeHandler := handlers.NewExchangeRateHandler(deps.Exchange)
	airHandler := handlers.NewAirQualityHandler(deps.Air)
	newsHandler := handlers.NewNewsHandler(deps.News)
	adminHandler := handlers.NewAdminHandler(deps.Users)

	// Open routes
	r.Get("/", weatherHandler.Home)
	// The weather lookup guards itself so anonymous callers get the
	// message-bearing login redirect.
	r.Post("/", weatherHandler.Lookup)
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)
	r.Get("/signup", authHandler.ShowSignup)
	r.Post("/signup", authHandler.Signup)
	r.Get("/exchange-rate", exchangeHandler.Lookup)
	r.Get("/news", newsHandler.Headlines)

	// Routes requiring an authenticated session
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession)
		r.Get("/weather-history", weatherHandler.History)
		r.Get("/exchange-rate-history", exchangeHandler.History)
		r.Get("/air-quality/{city}", airHandler.Lookup)
	})

	// Admin console. The edit-by-id view sits behind the admin gate as well;
	// one source variant left it open, which was an inconsistency, not intent.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession)
		r.Use(auth.RequireAdmin)
		r.Get("/admin", adminHandler.List)
		r.Get("/admin/add-user", adminHandler.ShowAddUser)
		r.Post("/admin/add-user", adminHandler.AddUser)
		r.Post("/delete-user", adminHandler.Delete)
		r.Get("/edit-user/{id}", adminHandler.ShowEdit)
		r.Post("/users/edit/{userId}", adminHandler.Edit)
	})

	return r
}
