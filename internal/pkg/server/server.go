package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo       *echo.Echo
	logger     *logger.ZapLogger
	cfg        models.ServerConfig
	components *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig) *GracefulServer {
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}
	return &GracefulServer{
		echo:       e,
		logger:     zapLogger,
		cfg:        cfg,
		components: NewShutdownManager(zapLogger),
	}
}

// OnShutdown registers a component closed after the HTTP server stops.
// Components close in registration order.
func (s *GracefulServer) OnShutdown(name string, fn func(context.Context) error) {
	s.components.Register(name, fn)
}

// Run serves until SIGINT or SIGTERM, then shuts everything down
func (s *GracefulServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve starts the HTTP server and blocks until ctx is done or the listener fails
func (s *GracefulServer) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	case serveErr = <-errCh:
		s.logger.Error("HTTP server failed", logger.Err(serveErr))
	}

	if err := s.Shutdown(); err != nil && serveErr == nil {
		serveErr = err
	}
	return serveErr
}

// Shutdown stops the HTTP server, then closes registered components
func (s *GracefulServer) Shutdown() error {
	timeout := defaultShutdownTimeout
	if s.cfg.ShutdownTimeout > 0 {
		timeout = time.Duration(s.cfg.ShutdownTimeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("Shutting down server gracefully...")
	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	s.components.Shutdown(ctx)
	s.logger.Info("Server shutdown completed")
	return err
}

type component struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager closes registered components in order
type ShutdownManager struct {
	logger     *logger.ZapLogger
	components []component
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown runs every cleanup function. A failing component does not stop the rest.
func (sm *ShutdownManager) Shutdown(ctx context.Context) []error {
	var errs []error
	for _, c := range sm.components {
		sm.logger.Info("Closing component", logger.String("component", c.name))
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	return errs
}
