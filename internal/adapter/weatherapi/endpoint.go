package weatherapi

import (
	"encoding/json"
	"net/url"

	"github.com/nightjar-labs/weather-glance/internal/domain"
)

// Messages is the per-provider table of user-facing failure text. Every
// classified failure maps to exactly one entry; the text is rendered
// verbatim in the error region.
type Messages struct {
	EmptyInput   string
	NotFound     string
	Unauthorized string
	Server       string
	Parse        string
}

// Endpoint describes one provider variant: where to send the location code,
// how to prepare it, how to read the body, and what to tell the user when
// the call fails. Both variants share the same fetch flow in Client; only
// the descriptor differs.
type Endpoint struct {
	Provider  string // metrics and log label
	BaseURL   string // fixed prefix; the request URL is BaseURL + escaped location
	Normalize func(string) string
	Escape    func(string) string // nil when the code goes on the URL as-is
	Messages  Messages
	Decode    func([]byte) (domain.Payload, error)
}

// RequestURL builds the full request URL for an already-normalized location.
func (e Endpoint) RequestURL(location string) string {
	if e.Escape != nil {
		location = e.Escape(location)
	}
	return e.BaseURL + location
}

// NWSAlerts returns the endpoint for NWS active alerts by state or zone
// code. The NWS API needs no auth and no escaping: codes are short
// alphanumeric strings, upper-cased before the request.
func NWSAlerts(baseURL string) Endpoint {
	generic := "Failed to fetch data. Please check your state code."
	return Endpoint{
		Provider:  "nws_alerts",
		BaseURL:   baseURL,
		Normalize: domain.NormalizeArea,
		Messages: Messages{
			EmptyInput:   "Please enter a state code.",
			NotFound:     generic,
			Unauthorized: generic,
			Server:       generic,
			Parse:        generic,
		},
		Decode: decodeAlerts,
	}
}

// OpenWeatherCurrent returns the endpoint for current conditions by city
// name. The API key, when present, is folded into the base URL so the
// request stays a plain concatenation of base + escaped city. Spaces in
// city names become %20 via url.PathEscape.
func OpenWeatherCurrent(baseURL, apiKey string) Endpoint {
	base := baseURL
	if apiKey != "" {
		base += "&appid=" + url.QueryEscape(apiKey)
	}
	base += "&q="

	return Endpoint{
		Provider:  "openweather",
		BaseURL:   base,
		Normalize: domain.NormalizeCity,
		Escape:    url.PathEscape,
		Messages: Messages{
			EmptyInput:   "Please enter a city name.",
			NotFound:     "City not found. Please check the city name.",
			Unauthorized: "Invalid API key. Please check your configuration.",
			Server:       "Failed to fetch weather data. Please try again.",
			Parse:        "Failed to fetch weather data. Please try again.",
		},
		Decode: decodeReading,
	}
}

func decodeAlerts(body []byte) (domain.Payload, error) {
	var col domain.AlertCollection
	if err := json.Unmarshal(body, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

func decodeReading(body []byte) (domain.Payload, error) {
	var reading domain.WeatherReading
	if err := json.Unmarshal(body, &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}
