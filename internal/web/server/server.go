// Package server hosts the pattern engine behind an HTTP API for editor
// panels and CI integrations.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/stencil-design/stencil/internal/web/live"
	"github.com/stencil-design/stencil/pattern"
)

// Server wraps the HTTP server hosting the pattern API.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	hub        *live.Hub
}

// New builds a server for the given registry listening on addr.
func New(addr string, registry *pattern.Registry, logger *zap.Logger) *Server {
	hub := live.NewHub(logger)
	api := NewAPI(registry, hub, logger)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/patterns", api.ListPatterns)
		r.Get("/patterns/{id}", api.GetPattern)
		r.Post("/detect", api.Detect)
		r.Post("/validate", api.Validate)
		r.Post("/generate", api.Generate)
		r.Get("/live", hub.Handler)
	})
	r.Get("/healthz", api.Health)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
		hub:    hub,
	}
}

// Hub returns the live update hub, so a watcher can publish into it.
func (s *Server) Hub() *live.Hub {
	return s.hub
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("pattern api listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and disconnects live clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
