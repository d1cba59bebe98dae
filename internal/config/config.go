package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Default provider endpoints. The location code is appended to these as-is,
// so both must end at the point where the code goes.
const (
	DefaultNWSBaseURL         = "https://api.weather.gov/alerts/active?area="
	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather?units=metric"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// FetchTimeout bounds each upstream request. There is no retry, so a
	// timeout surfaces to the user as a network error.
	FetchTimeout time.Duration

	NWSBaseURL         string
	OpenWeatherBaseURL string
	OpenWeatherAPIKey  string
}

// CityEnabled reports whether the city conditions variant is configured.
// Without an API key the server only offers the alerts variant.
func (c *Config) CityEnabled() bool { return c.OpenWeatherAPIKey != "" }

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory, if present, is folded
// in first without overriding already-set variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		FetchTimeout:    fetchTimeout,

		NWSBaseURL:         envOrDefault("NWS_BASE_URL", DefaultNWSBaseURL),
		OpenWeatherBaseURL: envOrDefault("OPENWEATHER_BASE_URL", DefaultOpenWeatherBaseURL),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
	}

	if cfg.NWSBaseURL == "" {
		return nil, errors.New("NWS_BASE_URL is required")
	}
	if cfg.CityEnabled() && cfg.OpenWeatherBaseURL == "" {
		return nil, errors.New("OPENWEATHER_BASE_URL is required when OPENWEATHER_API_KEY is set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}
