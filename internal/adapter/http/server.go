package http

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nightjar-labs/weather-glance/internal/briefing"
	"github.com/nightjar-labs/weather-glance/internal/view"
)

//go:embed web
var webFS embed.FS

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the briefing page, the cycle JSON APIs, and the health,
// readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	index      *template.Template
	set        *briefing.Set
	logger     *slog.Logger
}

// NewServer wires the router around a briefing set.
func NewServer(addr string, set *briefing.Set, logger *slog.Logger) *Server {
	s := &Server{
		index:  template.Must(template.ParseFS(webFS, "web/index.html")),
		set:    set,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(set))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", s.handleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept"},
			MaxAge:         300,
		}))
		r.Get("/alerts", handleCycle(set.Alerts, "area"))
		r.Get("/weather", s.handleWeather())
	})

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		CityEnabled bool
	}{
		CityEnabled: s.set.City != nil,
	}
	if err := s.index.Execute(w, data); err != nil {
		s.logger.Error("render index failed", "error", err)
	}
}

// handleCycle runs one request/render cycle on a fresh screen and answers
// with the resulting display state. Fetch failures are display states, not
// HTTP failures: the response is always 200.
func handleCycle(c *briefing.Cycle, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		screen := view.NewScreen()
		_ = c.Run(r.Context(), r.URL.Query().Get(param), screen)
		writeJSON(w, http.StatusOK, screen.State())
	}
}

func (s *Server) handleWeather() http.HandlerFunc {
	if s.set.City == nil {
		return func(w http.ResponseWriter, _ *http.Request) {
			screen := view.NewScreen()
			screen.ShowError("City weather is not configured on this server.")
			writeJSON(w, http.StatusOK, screen.State())
		}
	}
	return handleCycle(s.set.City, "city")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
