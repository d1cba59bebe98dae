package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, DefaultNWSBaseURL, cfg.NWSBaseURL)
	assert.Equal(t, DefaultOpenWeatherBaseURL, cfg.OpenWeatherBaseURL)
	assert.Empty(t, cfg.OpenWeatherAPIKey)
	assert.False(t, cfg.CityEnabled())
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("NWS_BASE_URL", "http://localhost:8181/alerts?area=")
	t.Setenv("OPENWEATHER_BASE_URL", "http://localhost:8282/weather?units=metric")
	t.Setenv("OPENWEATHER_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "http://localhost:8181/alerts?area=", cfg.NWSBaseURL)
	assert.Equal(t, "http://localhost:8282/weather?units=metric", cfg.OpenWeatherBaseURL)
	assert.Equal(t, "test-key", cfg.OpenWeatherAPIKey)
	assert.True(t, cfg.CityEnabled())
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeFetchTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}
