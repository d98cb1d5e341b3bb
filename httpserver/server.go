// Package httpserver exposes the analyzer over HTTP.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fwojciec/promptaudit"
)

// Server serves the analyze and health endpoints.
type Server struct {
	analyzer promptaudit.Analyzer
	logger   *slog.Logger
	srv      *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server backed by the given analyzer.
func NewServer(analyzer promptaudit.Analyzer, opts ...Option) *Server {
	s := &Server{
		analyzer: analyzer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	// The http.Server must exist before ListenAndServe runs: Shutdown
	// is called from another goroutine and must always see it. A
	// Shutdown that arrives first makes ListenAndServe return
	// immediately with ErrServerClosed.
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	// The logger sits outside the recoverer so panicking requests still
	// produce a request log line with the recoverer's 500.
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/analyze", s.handleAnalyze)

	return r
}

// ListenAndServe blocks serving on addr until Shutdown is called or
// the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.srv.Addr = addr
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
// Safe to call concurrently with, or before, ListenAndServe.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "promptaudit",
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req promptaudit.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, &promptaudit.AnalysisError{
			Kind:    promptaudit.KindInvalidRequest,
			Message: "request body must be JSON with a prompt_text field",
		})
		return
	}
	// Reject bad input before any provider round trip.
	if err := req.Validate(); err != nil {
		writeAnalysisError(w, err)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// statusFor maps the closed error taxonomy onto HTTP status codes.
// Rate-limited provider calls surface as 503 so clients know to back
// off; everything else upstream is a bad gateway.
func statusFor(err *promptaudit.AnalysisError) int {
	switch err.Kind {
	case promptaudit.KindInvalidRequest:
		return http.StatusUnprocessableEntity
	case promptaudit.KindTimeout:
		return http.StatusGatewayTimeout
	case promptaudit.KindMalformedResponse:
		return http.StatusBadGateway
	case promptaudit.KindProviderError:
		if err.Upstream == http.StatusTooManyRequests || err.Upstream == http.StatusServiceUnavailable {
			return http.StatusServiceUnavailable
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeAnalysisError(w http.ResponseWriter, err error) {
	var aerr *promptaudit.AnalysisError
	if !errors.As(err, &aerr) {
		aerr = &promptaudit.AnalysisError{
			Kind:    promptaudit.KindProviderError,
			Message: err.Error(),
		}
	}
	writeError(w, statusFor(aerr), aerr)
}

func writeError(w http.ResponseWriter, status int, aerr *promptaudit.AnalysisError) {
	writeJSON(w, status, map[string]string{
		"kind":    string(aerr.Kind),
		"message": aerr.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
