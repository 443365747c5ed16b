package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/logging"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes operational endpoints next to the bot: health, readiness, metrics and a
// dry-run renderer that shows what the bot would post for a navigation key.
type Server struct {
	Fetcher  ports.Fetcher       // optional, enables GET /prompts/{key}
	Ready    func() bool         // optional, defaults to always ready
	Gatherer prometheus.Gatherer // optional, defaults to prometheus.DefaultGatherer
	Logger   *slog.Logger
}

// NewHandler creates the ops router.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}
	if s.Gatherer == nil {
		s.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	r.Get("/readyz", s.GetReady)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	if s.Fetcher != nil {
		r.Get("/prompts/{key}", s.GetPrompt)
		r.Get("/prompts/", s.GetPrompt) // empty key, rejected with 400
	}
	return r
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.Logger)
}

// GetReady handles the GET /readyz request.
func (s *Server) GetReady(w http.ResponseWriter, r *http.Request) {
	if s.Ready != nil && !s.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "connecting"}, s.Logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, s.Logger)
}

// GetPrompt handles GET /prompts/{key}: fetch and render without posting anything.
func (s *Server) GetPrompt(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil || key == "" {
		http.Error(w, "Invalid navigation key", http.StatusBadRequest)
		return
	}

	resp, err := s.Fetcher.Fetch(r.Context(), key)
	if err == nil {
		var prompt domain.Prompt
		prompt, err = render.Render(resp, key == domain.RootKey)
		if err == nil {
			writeJSON(w, http.StatusOK, prompt, s.Logger)
			return
		}
	}

	s.Logger.Warn("GetPrompt failed", "key", key, "error_kind", domain.ErrorKind(err), "error", err)
	status := http.StatusBadGateway
	if errors.Is(err, domain.ErrInvalidKey) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{
		"error":      err.Error(),
		"error_kind": domain.ErrorKind(err),
		"notice":     render.FailureNotice().Body,
	}, s.Logger)
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
