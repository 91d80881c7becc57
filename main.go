package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/aslanbek/weatherdesk/internal/api"
	"github.com/aslanbek/weatherdesk/internal/auth"
	"github.com/aslanbek/weatherdesk/internal/config"
	"github.com/aslanbek/weatherdesk/internal/database"
	"github.com/aslanbek/weatherdesk/internal/logger"
	"github.com/aslanbek/weatherdesk/internal/services"
	"github.com/aslanbek/weatherdesk/internal/session"
	"github.com/aslanbek/weatherdesk/internal/upstream"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up the session layer
	sessionStore := session.NewStore(cfg.SessionTTL)
	sessions := auth.NewSessions(sessionStore, cfg.SessionSecret, cfg.SessionTTL)

	// Reap expired sessions in the background
	sweeper := cron.New()
	_, err = sweeper.AddFunc("@every 15m", func() {
		if n := sessionStore.Sweep(); n > 0 {
			log.Info().Int("count", n).Msg("Swept expired sessions")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule session sweep")
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Set up upstream provider clients
	client := upstream.NewClient()
	weatherProvider := upstream.NewWeatherProvider(client, cfg.OpenWeatherAPIKey)
	airProvider := upstream.NewAirQualityProvider(client, cfg.AirQualityAPIKey)
	rateProvider := upstream.NewExchangeRateProvider(client, cfg.ExchangeRateAPIKey)
	newsProvider := upstream.NewNewsProvider(client, cfg.NewsAPIKey)

	// Set up services
	userService := services.NewUserService(db)
	weatherService := services.NewWeatherService(db, weatherProvider)
	exchangeService := services.NewExchangeRateService(db, rateProvider)
	airService := services.NewAirQualityService(db, airProvider)

	// Select the authorization model
	var strategy auth.LoginStrategy
	switch cfg.AuthMode {
	case config.FixedAdminMode:
		strategy = auth.NewFixedAdminStrategy(userService, cfg.AdminUsername, cfg.AdminPassword)
	default:
		strategy = auth.NewUserFlagStrategy(userService)
	}
	log.Info().Str("auth_mode", cfg.AuthMode).Msg("Authorization model selected")

	// Set up router
	router := api.NewRouter(api.Deps{
		Sessions: sessions,
		Strategy: strategy,
		Users:    userService,
		Weather:  weatherService,
		Exchange: exchangeService,
		Air:      airService,
		News:     newsProvider,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
