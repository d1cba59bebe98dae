package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/nightjar-labs/weather-glance/internal/adapter/http"
	"github.com/nightjar-labs/weather-glance/internal/adapter/weatherapi"
	"github.com/nightjar-labs/weather-glance/internal/briefing"
	"github.com/nightjar-labs/weather-glance/internal/config"
	"github.com/nightjar-labs/weather-glance/internal/observability"
	"github.com/nightjar-labs/weather-glance/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	renderer := view.NewRenderer(logger)

	alerts := weatherapi.NewClient(weatherapi.NWSAlerts(cfg.NWSBaseURL), cfg.FetchTimeout, metrics, logger)
	set := &briefing.Set{
		Alerts: briefing.NewCycle(alerts, renderer, logger, metrics),
	}

	// City conditions are feature-flagged via OPENWEATHER_API_KEY.
	if cfg.CityEnabled() {
		city := weatherapi.NewClient(weatherapi.OpenWeatherCurrent(cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey), cfg.FetchTimeout, metrics, logger)
		set.City = briefing.NewCycle(city, renderer, logger, metrics)
		logger.Info("city conditions enabled")
	} else {
		logger.Info("city conditions disabled, set OPENWEATHER_API_KEY to enable")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, set, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.ServerReady.Set(1)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	metrics.ServerReady.Set(0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
