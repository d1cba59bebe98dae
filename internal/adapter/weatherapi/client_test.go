package weatherapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightjar-labs/weather-glance/internal/domain"
	"github.com/nightjar-labs/weather-glance/internal/observability"
)

func testClient(ep Endpoint) *Client {
	return &Client{
		endpoint:   ep,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func requireFetchError(t *testing.T, err error) *domain.FetchError {
	t.Helper()
	var ferr *domain.FetchError
	require.ErrorAs(t, err, &ferr)
	return ferr
}

func TestFetch_EmptyInput_NoNetworkCall(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", " \t\n "},
	}

	c := testClient(OpenWeatherCurrent(srv.URL+"/weather?units=metric", "key"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Fetch(context.Background(), tt.input)

			ferr := requireFetchError(t, err)
			assert.Equal(t, domain.KindInvalidInput, ferr.Kind)
			assert.Equal(t, "Please enter a city name.", ferr.Message)
			assert.Equal(t, int64(0), hits.Load())
		})
	}
}

func TestFetch_EmptyArea_StateMessage(t *testing.T) {
	c := testClient(NWSAlerts("http://127.0.0.1:0/alerts?area="))

	_, err := c.Fetch(context.Background(), "  ")

	ferr := requireFetchError(t, err)
	assert.Equal(t, domain.KindInvalidInput, ferr.Kind)
	assert.Equal(t, "Please enter a state code.", ferr.Message)
}

func TestFetch_Alerts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TX", r.URL.Query().Get("area"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[
			{"properties":{"headline":"Tornado Warning issued for Travis County"}},
			{"properties":{"headline":"Severe Thunderstorm Watch until 9 PM"}}
		]}`))
	}))
	defer srv.Close()

	c := testClient(NWSAlerts(srv.URL + "/alerts/active?area="))
	obs, err := c.Fetch(context.Background(), " tx ")
	require.NoError(t, err)

	assert.Equal(t, "TX", obs.Location)
	col, ok := obs.Payload.(*domain.AlertCollection)
	require.True(t, ok)
	assert.Equal(t, "TX", col.Area)
	require.Equal(t, 2, col.Count())
	assert.Equal(t, "Tornado Warning issued for Travis County", col.Features[0].Properties.Headline)
	assert.Equal(t, "Severe Thunderstorm Watch until 9 PM", col.Features[1].Properties.Headline)
}

func TestFetch_Alerts_ZeroFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	c := testClient(NWSAlerts(srv.URL + "/alerts/active?area="))
	obs, err := c.Fetch(context.Background(), "WY")
	require.NoError(t, err)

	col, ok := obs.Payload.(*domain.AlertCollection)
	require.True(t, ok)
	assert.Equal(t, 0, col.Count())
}

func TestFetch_City_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Write([]byte(`{"name":"Paris","sys":{"country":"FR"},"main":{"temp":18,"humidity":65},"weather":[{"description":"partly cloudy"}]}`))
	}))
	defer srv.Close()

	c := testClient(OpenWeatherCurrent(srv.URL+"/weather?units=metric", "test-key"))
	obs, err := c.Fetch(context.Background(), "Paris")
	require.NoError(t, err)

	reading, ok := obs.Payload.(*domain.WeatherReading)
	require.True(t, ok)
	assert.Equal(t, "Paris", reading.Name)
	assert.Equal(t, "FR", reading.Sys.Country)
	assert.Equal(t, 18.0, reading.Main.Temp)
	assert.Equal(t, 65, reading.Main.Humidity)
	assert.Equal(t, "partly cloudy", reading.Description())
}

func TestFetch_City_PercentEncodesSpaces(t *testing.T) {
	var gotURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		w.Write([]byte(`{"name":"New York","sys":{"country":"US"},"main":{"temp":10,"humidity":50},"weather":[{"description":"clear sky"}]}`))
	}))
	defer srv.Close()

	c := testClient(OpenWeatherCurrent(srv.URL+"/weather?units=metric", "key"))
	_, err := c.Fetch(context.Background(), "New York")
	require.NoError(t, err)

	assert.Contains(t, gotURI, "New%20York")
}

func TestFetch_City_StatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind domain.ErrorKind
		wantMsg  string
	}{
		{"not found", http.StatusNotFound, domain.KindNotFound, "City not found. Please check the city name."},
		{"unauthorized", http.StatusUnauthorized, domain.KindUnauthorized, "Invalid API key. Please check your configuration."},
		{"server error", http.StatusInternalServerError, domain.KindServerError, "Failed to fetch weather data. Please try again."},
		{"bad gateway", http.StatusBadGateway, domain.KindServerError, "Failed to fetch weather data. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := testClient(OpenWeatherCurrent(srv.URL+"/weather?units=metric", "key"))
			_, err := c.Fetch(context.Background(), "Paris")

			ferr := requireFetchError(t, err)
			assert.Equal(t, tt.wantKind, ferr.Kind)
			assert.Equal(t, tt.wantMsg, ferr.Message)
		})
	}
}

func TestFetch_Alerts_FailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(NWSAlerts(srv.URL + "/alerts/active?area="))
	_, err := c.Fetch(context.Background(), "ZZ")

	ferr := requireFetchError(t, err)
	assert.Equal(t, domain.KindNotFound, ferr.Kind)
	assert.Equal(t, "Failed to fetch data. Please check your state code.", ferr.Message)
}

type errorTransport struct {
	err error
}

func (t errorTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, t.err
}

func TestFetch_TransportErrorMessagePassthrough(t *testing.T) {
	cause := errors.New("Network error")
	c := testClient(OpenWeatherCurrent("http://example.invalid/weather?units=metric", "key"))
	c.httpClient = &http.Client{Transport: errorTransport{err: cause}}

	_, err := c.Fetch(context.Background(), "Paris")

	ferr := requireFetchError(t, err)
	assert.Equal(t, domain.KindNetworkError, ferr.Kind)
	assert.Equal(t, "Network error", ferr.Message)
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"features": [oops`))
	}))
	defer srv.Close()

	c := testClient(NWSAlerts(srv.URL + "/alerts/active?area="))
	_, err := c.Fetch(context.Background(), "TX")

	ferr := requireFetchError(t, err)
	assert.Equal(t, domain.KindParseError, ferr.Kind)
}

func TestFetch_ConcurrentRequestsAreIsolated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("q")
		w.Write([]byte(`{"name":"` + city + `","sys":{"country":"XX"},"main":{"temp":1,"humidity":1},"weather":[{"description":"ok"}]}`))
	}))
	defer srv.Close()

	c := testClient(OpenWeatherCurrent(srv.URL+"/weather?units=metric", "key"))

	cities := []string{"Paris", "Berlin", "Oslo", "Lima"}
	results := make([]string, len(cities))

	var wg sync.WaitGroup
	for i, city := range cities {
		i, city := i, city
		wg.Add(1)
		go func() {
			defer wg.Done()
			obs, err := c.Fetch(context.Background(), city)
			if err != nil {
				return
			}
			if reading, ok := obs.Payload.(*domain.WeatherReading); ok {
				results[i] = reading.Name
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, cities, results)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(NWSAlerts(srv.URL + "/alerts/active?area="))
	c.httpClient = &http.Client{Timeout: 50 * time.Millisecond}

	_, err := c.Fetch(context.Background(), "TX")

	ferr := requireFetchError(t, err)
	assert.Equal(t, domain.KindNetworkError, ferr.Kind)
}
