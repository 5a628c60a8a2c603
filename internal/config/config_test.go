package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, float64(20), cfg.RateLimit.RequestsPerSecond)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 5.5, cfg.RateLimit.RequestsPerSecond)
	// Unparseable values fall back to the default.
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
}
