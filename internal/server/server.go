package server

import (
	"context"
	"net/http"
	"time"

	"github.com/agbru/bigcalc/internal/logging"
)

// Server hosts the metrics and health endpoints for a running bigcalc
// process.
type Server struct {
	metrics    *Metrics
	logger     logging.Logger
	httpServer *http.Server
}

// NewServer builds a Server listening on addr, applying sec to the
// underlying http.Server.
func NewServer(addr string, metrics *Metrics, logger logging.Logger, sec SecurityConfig) *Server {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	s := &Server{metrics: metrics, logger: logger}

	mux := http.NewServeMux()
	mux.Handle("/metrics", securityHeadersMiddleware(http.HandlerFunc(s.handleMetrics)))
	mux.Handle("/healthz", securityHeadersMiddleware(http.HandlerFunc(s.handleHealth)))

	s.httpServer = &http.Server{
		Addr:           addr,
		Handler:        metricsMiddleware(logger, mux),
		ReadTimeout:    sec.ReadTimeout,
		WriteTimeout:   sec.WriteTimeout,
		IdleTimeout:    sec.IdleTimeout,
		MaxHeaderBytes: sec.MaxHeaderBytes,
	}
	return s
}

// metricsMiddleware logs the method, path, and latency of every request.
func metricsMiddleware(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request served",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000.0),
		)
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	if err := s.metrics.WritePrometheus(w); err != nil {
		s.logger.Error("failed to write metrics", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Start runs the HTTP server until ctx is canceled, at which point it
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Shutdown stops the server gracefully: it stops accepting connections and
// waits for in-flight requests to finish, or for ctx to be done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
