package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"utility-api/internal/config"
	"utility-api/internal/observability"
)

// Server is the HTTP front end for the calculator and text endpoints.
type Server struct {
	cfg        *config.Config
	httpServer *http.Server
	ready      atomic.Bool
}

// New builds a Server from cfg. It does not start listening.
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}
	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      NewRouter(cfg, &s.ready),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		observability.Logger.Info("server started",
			zap.String("addr", s.httpServer.Addr),
			zap.String("version", s.cfg.Version),
		)
		s.ready.Store(true)

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *Server) shutdown() error {
	s.ready.Store(false)
	observability.Logger.Info("shutting down server", zap.Duration("timeout", s.cfg.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
