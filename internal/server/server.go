package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/handler"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bgWorkers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
		stop()
	}

	s.Shutdown()
	wg.Wait()
	s.logger.Info().Msg("server shutdown gracefully")

	return err
}
