package view

import (
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/nightjar-labs/weather-glance/internal/domain"
)

// Renderer projects fetch outcomes onto a Display. Both entry points are
// total: they never panic and always leave the display in exactly one of
// the two states.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// RenderResults shows the observation in the results region, clearing any
// previously displayed error.
func (r *Renderer) RenderResults(d Display, obs domain.Observation) {
	var v ResultsView
	switch p := obs.Payload.(type) {
	case *domain.AlertCollection:
		v = alertsView(obs.Location, p)
	case *domain.WeatherReading:
		v = readingView(p)
	default:
		// An unknown payload still completes the cycle: render an empty
		// results region instead of leaking an internal error to the page.
		r.logger.Error("unknown payload type", "location", obs.Location)
	}
	v.UpdatedAt = clock.Now()
	d.ShowResults(v)
}

// RenderError shows the literal message in the error region and hides the
// results region. The message is not validated or rewritten.
func (r *Renderer) RenderError(d Display, message string) {
	d.ShowError(message)
}

func alertsView(area string, col *domain.AlertCollection) ResultsView {
	v := ResultsView{
		Summary:    fmt.Sprintf("Current watches, warnings, and advisories for %s: %d", area, col.Count()),
		ClearInput: true,
	}
	if col.Count() == 0 {
		v.Notice = "No alerts at this time."
		return v
	}
	v.Items = make([]string, 0, len(col.Features))
	for _, a := range col.Features {
		v.Items = append(v.Items, a.Properties.Headline)
	}
	return v
}

func readingView(reading *domain.WeatherReading) ResultsView {
	location := reading.Name
	if reading.Sys.Country != "" {
		location = fmt.Sprintf("%s, %s", reading.Name, reading.Sys.Country)
	}
	return ResultsView{
		Fields: []Field{
			{Label: "Location", Value: location},
			{Label: "Temperature", Value: fmt.Sprintf("%g°C (%g°F)", reading.Main.Temp, reading.Fahrenheit())},
			{Label: "Humidity", Value: fmt.Sprintf("%d%%", reading.Main.Humidity)},
			{Label: "Conditions", Value: capitalize(reading.Description())},
		},
	}
}

// capitalize upper-cases the first rune only; OpenWeather descriptions
// arrive all lower-case.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
