package briefing

import (
	"context"
	"errors"
)

// Set groups the configured cycles. City is nil when no OpenWeather key is
// configured; the HTTP layer answers those requests with a display error.
type Set struct {
	Alerts *Cycle
	City   *Cycle
}

// CheckReadiness backs the HTTP readiness probe. The service is ready as
// soon as at least the alerts variant is wired.
func (s *Set) CheckReadiness(_ context.Context) error {
	if s == nil || s.Alerts == nil {
		return errors.New("no providers configured")
	}
	return nil
}
