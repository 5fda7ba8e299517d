package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/turtacn/patent-dendrogram/internal/config"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/internal/interfaces/http/handlers"
)

// Server wraps http.Server with logging and readiness draining.
type Server struct {
	srv    *http.Server
	cfg    config.ServerConfig
	health *handlers.HealthHandler
	logger logging.Logger
}

// NewServer binds handler to the configured port.  health may be nil.
func NewServer(cfg config.ServerConfig, handler http.Handler, health *handlers.HealthHandler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		cfg:    cfg,
		health: health,
		logger: logger.Named("http"),
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Addr is the configured listen address.
func (s *Server) Addr() string { return s.srv.Addr }

// Start listens and serves until Stop; it returns nil after a clean shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("HTTP server listening", logging.String("addr", ln.Addr().String()))
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop marks the server as draining and shuts it down, waiting at most
// ShutdownTimeout for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.health != nil {
		s.health.SetDraining()
	}
	s.logger.Info("shutting down HTTP server")

	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

//Personal.AI order the ending
