package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "./weatherdesk.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, UserFlagMode, cfg.AuthMode)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("OPENWEATHER_API_KEY", "ow-key")
	t.Setenv("AUTH_MODE", FixedAdminMode)
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "ow-key", cfg.OpenWeatherAPIKey)
	assert.Equal(t, FixedAdminMode, cfg.AuthMode)
	assert.Equal(t, "root", cfg.AdminUsername)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("SESSION_TTL_HOURS", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("fixed-admin without credentials", func(t *testing.T) {
		t.Setenv("AUTH_MODE", FixedAdminMode)
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Setenv("AUTH_MODE", "oracle")
		_, err := Load()
		assert.Error(t, err)
	})
}
