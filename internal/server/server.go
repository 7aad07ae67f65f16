// Package server owns the HTTP server lifecycle, from dependency setup
// to graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emre/acadrecords/internal/bootstrap"
	"github.com/emre/acadrecords/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and the resources it owns.
type Server struct {
	httpServer *http.Server
	dbPool     *pgxpool.Pool
	cfg        *config.Config
	logger     zerolog.Logger
}

// NewServer loads configuration, connects to the database, builds all
// dependencies and prepares the HTTP server. It does not start listening.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Server.Port,
			Handler: router,
		},
		dbPool: dbPool,
		cfg:    cfg,
		logger: lgr,
	}, nil
}

// Run starts the HTTP server and blocks until an interrupt or terminate
// signal arrives, then shuts down gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.logger.Error().Err(err).Msg("HTTP server failed")
		s.dbPool.Close()
		return err
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server gracefully and releases resources.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	s.dbPool.Close()
	s.logger.Info().Msg("Server stopped")
	return err
}
