package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/sea-level-dashboard/internal/dashboard"
	"github.com/couchcryptid/sea-level-dashboard/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Renderer turns a view selection into a dashboard.
type Renderer interface {
	CheckReadiness(ctx context.Context) error
	ParseView(rawYear, region string) (domain.ViewState, error)
	Render(ctx context.Context, view domain.ViewState) (dashboard.Dashboard, error)
}

// Server exposes the dashboard page, its JSON API, and health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	renderer   Renderer
	page       *page
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /, /api/dashboard, /api/regions,
// /healthz, /readyz, and /metrics routes.
func NewServer(addr string, renderer Renderer, opts PageOptions, logger *slog.Logger) (*Server, error) {
	pg, err := newPage(opts)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      accessLog(logger)(mux),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		renderer: renderer,
		page:     pg,
		logger:   logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/regions", handleRegions)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(renderer))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s, nil
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

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	d, err := s.renderRequest(r)
	if err != nil {
		http.Error(w, err.Error(), s.statusFor(r, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.write(w, d); err != nil {
		s.logger.Error("write page failed", "error", err, "render_id", d.RenderID)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.renderRequest(r)
	if err != nil {
		writeJSON(w, s.statusFor(r, err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"options": domain.RegionOptions(),
		"cases":   domain.RegionCases(),
	})
}

func (s *Server) renderRequest(r *http.Request) (dashboard.Dashboard, error) {
	q := r.URL.Query()
	view, err := s.renderer.ParseView(q.Get("year"), q.Get("region"))
	if err != nil {
		return dashboard.Dashboard{}, err
	}
	return s.renderer.Render(r.Context(), view)
}

// statusFor maps render errors to HTTP status codes, logging the unexpected ones.
func (s *Server) statusFor(r *http.Request, err error) int {
	if errors.Is(err, domain.ErrInvalidArgument) {
		return http.StatusBadRequest
	}
	s.logger.Error("render failed", "error", err, "path", r.URL.Path, "query", r.URL.RawQuery)
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
