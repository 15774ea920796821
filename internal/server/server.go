package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/handler"
	"github.com/MKhiriev/go-auth-session/internal/logger"
)

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ServerHTTP, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg),
		logger:     logger,
	}, nil
}

// Run serves until ctx is cancelled and then shuts the listener down. A
// listener that fails on its own (e.g. address in use) ends Run early with
// that error.
func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	served := make(chan error, 1)
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("launching HTTP server")
	go func() {
		served <- listen(s.httpServer)
	}()

	select {
	case err := <-served:
		if err != nil {
			return fmt.Errorf("%w: %w", errListen, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down HTTP server")
	if err := shutdown(s.httpServer); err != nil {
		s.logger.Err(err).Msg("HTTP server shutdown")
	}
	if err := <-served; err != nil {
		return fmt.Errorf("%w: %w", errListen, err)
	}

	s.logger.Info().Msg("server stopped gracefully")
	return nil
}
