// Command check runs one fetch/render cycle per requested variant against
// the live APIs and prints the resulting display state to stdout, one region
// line at a time. Useful for verifying provider connectivity and the error
// messages without starting the server.
//
// Usage:
//
//	go run ./cmd/check -area TX
//	OPENWEATHER_API_KEY=... go run ./cmd/check -city "New York"
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nightjar-labs/weather-glance/internal/adapter/weatherapi"
	"github.com/nightjar-labs/weather-glance/internal/briefing"
	"github.com/nightjar-labs/weather-glance/internal/config"
	"github.com/nightjar-labs/weather-glance/internal/observability"
	"github.com/nightjar-labs/weather-glance/internal/view"
)

// consoleDisplay writes display regions as plain lines. It satisfies
// view.Display, so the renderer is exercised unchanged.
type consoleDisplay struct {
	out io.Writer
}

func (d *consoleDisplay) ShowResults(v view.ResultsView) {
	if v.Summary != "" {
		fmt.Fprintln(d.out, v.Summary)
	}
	for _, item := range v.Items {
		fmt.Fprintln(d.out, "  - "+item)
	}
	if v.Notice != "" {
		fmt.Fprintln(d.out, v.Notice)
	}
	for _, f := range v.Fields {
		fmt.Fprintf(d.out, "%s: %s\n", f.Label, f.Value)
	}
}

func (d *consoleDisplay) ShowError(message string) {
	fmt.Fprintln(d.out, "error: "+message)
}

func (d *consoleDisplay) Clear() {}

func main() {
	area := flag.String("area", "", "state or zone code to fetch active alerts for")
	city := flag.String("city", "", "city name to fetch current conditions for")
	flag.Parse()

	if *area == "" && *city == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	metrics := observability.NewMetrics()
	renderer := view.NewRenderer(logger)
	display := &consoleDisplay{out: os.Stdout}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()

	failed := false

	if *area != "" {
		client := weatherapi.NewClient(weatherapi.NWSAlerts(cfg.NWSBaseURL), cfg.FetchTimeout, metrics, logger)
		cycle := briefing.NewCycle(client, renderer, logger, metrics)
		if err := cycle.Run(ctx, *area, display); err != nil {
			failed = true
		}
	}

	if *city != "" {
		if !cfg.CityEnabled() {
			fmt.Fprintln(os.Stderr, "OPENWEATHER_API_KEY is not set")
			os.Exit(1)
		}
		client := weatherapi.NewClient(weatherapi.OpenWeatherCurrent(cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey), cfg.FetchTimeout, metrics, logger)
		cycle := briefing.NewCycle(client, renderer, logger, metrics)
		if err := cycle.Run(ctx, *city, display); err != nil {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
