// Package briefing wires fetchers to the renderer: one Cycle per provider
// variant, each running the full request/validate/render flow for a single
// user action.
package briefing

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nightjar-labs/weather-glance/internal/domain"
	"github.com/nightjar-labs/weather-glance/internal/observability"
	"github.com/nightjar-labs/weather-glance/internal/view"
)

// Fetcher produces one observation for a raw location code.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (domain.Observation, error)
	Provider() string
}

// Cycle routes one fetch outcome to exactly one renderer entry point.
// Overlapping runs are independent; nothing is shared between them except
// the display handed in, so callers decide whether overlaps can collide.
type Cycle struct {
	fetcher  Fetcher
	renderer *view.Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewCycle creates the wiring for one provider variant.
func NewCycle(f Fetcher, r *view.Renderer, logger *slog.Logger, metrics *observability.Metrics) *Cycle {
	return &Cycle{
		fetcher:  f,
		renderer: r,
		logger:   logger,
		metrics:  metrics,
	}
}

// Provider returns the label of the underlying fetcher.
func (c *Cycle) Provider() string { return c.fetcher.Provider() }

// Run executes one request/render cycle: fetch, then render either the
// results or the error. Every outcome lands on the display; the returned
// error mirrors whether the error region was written.
func (c *Cycle) Run(ctx context.Context, rawInput string, d view.Display) error {
	obs, err := c.fetcher.Fetch(ctx, rawInput)
	if err != nil {
		c.metrics.Cycles.WithLabelValues(c.Provider(), "error").Inc()
		c.renderer.RenderError(d, userMessage(err))
		return err
	}

	c.metrics.Cycles.WithLabelValues(c.Provider(), "rendered").Inc()
	c.renderer.RenderResults(d, obs)
	return nil
}

// userMessage extracts the display text for a failed fetch. Errors outside
// the taxonomy still surface rather than being swallowed.
func userMessage(err error) string {
	var ferr *domain.FetchError
	if errors.As(err, &ferr) {
		return ferr.Message
	}
	return err.Error()
}
