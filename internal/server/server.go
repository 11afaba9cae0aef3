// Package server exposes the leaderboard over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/scores"
)

// maxBodyBytes bounds the size of a submission body.
const maxBodyBytes = 100 << 10

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":3000").
	Address string

	// ShutdownTimeout bounds how long in-flight requests may run after
	// shutdown begins.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults. PORT in the
// environment overrides the default port.
func DefaultConfig() Config {
	addr := ":3000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	return Config{
		Address:         addr,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server serves GET and POST /api/scores.
type Server struct {
	config  Config
	backend scores.Backend
	logger  *log.Logger
	http    *http.Server
}

// New creates a server answering from backend. A nil logger gets a
// timestamped stderr logger.
func New(cfg Config, backend scores.Backend, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tetris-http",
		})
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}

	s := &Server{
		config:  cfg,
		backend: backend,
		logger:  logger,
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+scores.APIPath, s.handleList)
	mux.HandleFunc("POST "+scores.APIPath, s.handleSubmit)
	return s.loggingMiddleware(mux)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	top, err := s.backend.Leaderboard(r.Context(), scores.DefaultLimit)
	if err != nil {
		s.logger.Error("cannot load leaderboard", "error", err)
		writeJSON(w, http.StatusInternalServerError, message("Could not load scores"))
		return
	}
	if top == nil {
		top = []scores.Record{}
	}
	writeJSON(w, http.StatusOK, top)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, message("Invalid payload"))
		return
	}

	name, score, err := scores.DecodeSubmission(body)
	if err == nil {
		err = s.backend.Submit(r.Context(), name, score)
	}

	switch {
	case errors.Is(err, scores.ErrInvalidPayload):
		writeJSON(w, http.StatusBadRequest, message("Invalid payload"))
	case err != nil:
		s.logger.Error("cannot save score", "error", err)
		writeJSON(w, http.StatusInternalServerError, message("Could not save score"))
	default:
		writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	}
}

func message(text string) map[string]string {
	return map[string]string{"message": text}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	//nolint:errcheck // Client went away
	json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs every request with its status and duration.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting HTTP server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
