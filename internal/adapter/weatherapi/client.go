package weatherapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nightjar-labs/weather-glance/internal/domain"
	"github.com/nightjar-labs/weather-glance/internal/observability"
)

// Client fetches one bound endpoint. It holds no per-request state and is
// safe for concurrent use; overlapping fetches are fully independent.
type Client struct {
	endpoint   Endpoint
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient binds a fetch client to one endpoint descriptor.
func NewClient(ep Endpoint, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		endpoint: ep,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Provider returns the metrics and log label of the bound endpoint.
func (c *Client) Provider() string { return c.endpoint.Provider }

// Fetch runs one request cycle: validate the location code, issue a single
// GET with no retry, classify the outcome, decode the body. It returns
// either a fully parsed observation or a classified *domain.FetchError,
// never a mix. Invalid input fails before any network activity.
func (c *Client) Fetch(ctx context.Context, location string) (domain.Observation, error) {
	ep := c.endpoint

	norm := ep.Normalize(location)
	if norm == "" {
		return domain.Observation{}, c.fail(domain.KindInvalidInput, ep.Messages.EmptyInput, errors.New("empty location code"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.RequestURL(norm), nil)
	if err != nil {
		return domain.Observation{}, c.fail(domain.KindNetworkError, transportMessage(err), err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Observation{}, c.fail(domain.KindNetworkError, transportMessage(err), err)
	}
	defer resp.Body.Close()
	c.metrics.FetchDuration.WithLabelValues(ep.Provider).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind, msg := classifyStatus(resp.StatusCode, ep.Messages)
		return domain.Observation{}, c.fail(kind, msg, fmt.Errorf("%s: status %d", ep.Provider, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Observation{}, c.fail(domain.KindNetworkError, transportMessage(err), err)
	}

	payload, err := ep.Decode(body)
	if err != nil {
		return domain.Observation{}, c.fail(domain.KindParseError, ep.Messages.Parse, fmt.Errorf("decode response: %w", err))
	}

	// The wire payload does not carry the queried area; stamp it so the
	// renderer can build the summary line.
	if col, ok := payload.(*domain.AlertCollection); ok {
		col.Area = norm
	}

	c.metrics.FetchRequests.WithLabelValues(ep.Provider, "success").Inc()
	c.logger.Debug("fetch succeeded", "provider", ep.Provider, "location", norm)
	return domain.Observation{Location: norm, Payload: payload}, nil
}

// fail records the failure and wraps it into the error taxonomy.
func (c *Client) fail(kind domain.ErrorKind, message string, err error) *domain.FetchError {
	c.metrics.FetchRequests.WithLabelValues(c.endpoint.Provider, string(kind)).Inc()
	c.logger.Warn("fetch failed", "provider", c.endpoint.Provider, "kind", string(kind), "error", err)
	return &domain.FetchError{Kind: kind, Message: message, Err: err}
}

func classifyStatus(status int, m Messages) (domain.ErrorKind, string) {
	switch status {
	case http.StatusNotFound:
		return domain.KindNotFound, m.NotFound
	case http.StatusUnauthorized:
		return domain.KindUnauthorized, m.Unauthorized
	default:
		return domain.KindServerError, m.Server
	}
}

// transportMessage surfaces the underlying failure text verbatim, stripping
// the net/http URL wrapper so the user sees the cause, not the request line.
func transportMessage(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err.Error()
	}
	return err.Error()
}
