package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Authorization models selectable at startup. UserFlagMode reads the admin
// flag from the user record; FixedAdminMode authenticates a configured
// credential pair as admin without consulting the users table.
const (
	UserFlagMode   = "user-flag"
	FixedAdminMode = "fixed-admin"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string

	SessionSecret string
	SessionTTL    time.Duration

	OpenWeatherAPIKey  string
	AirQualityAPIKey   string
	ExchangeRateAPIKey string
	NewsAPIKey         string

	AuthMode      string
	AdminUsername string
	AdminPassword string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	ttlStr := getEnv("SESSION_TTL_HOURS", "24")
	ttlHours, err := strconv.Atoi(ttlStr)
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS %q", ttlStr)
	}

	cfg := &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./weatherdesk.db"),

		SessionSecret: getEnv("SESSION_SECRET", "dev-session-secret"),
		SessionTTL:    time.Duration(ttlHours) * time.Hour,

		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		AirQualityAPIKey:   getEnv("OPENAQ_API_KEY", ""),
		ExchangeRateAPIKey: getEnv("EXCHANGE_RATE_API_KEY", ""),
		NewsAPIKey:         getEnv("NEWS_API_KEY", ""),

		AuthMode:      getEnv("AUTH_MODE", UserFlagMode),
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	switch cfg.AuthMode {
	case UserFlagMode:
	case FixedAdminMode:
		if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
			return nil, fmt.Errorf("AUTH_MODE %q requires ADMIN_USERNAME and ADMIN_PASSWORD", FixedAdminMode)
		}
	default:
		return nil, fmt.Errorf("unknown AUTH_MODE %q", cfg.AuthMode)
	}

	return cfg, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
