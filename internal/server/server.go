package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/handler"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	listen     func(network, address string) (net.Listener, error)

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger),
		address:    cfg.HTTPAddress,
		listen:     net.Listen,
		logger:     logger,
	}, nil
}

// Run listens on the configured address and serves until ctx is cancelled.
// A failure to listen or serve is returned; a cancelled ctx is not an error.
func (s *server) Run(ctx context.Context) error {
	ln, err := s.listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.address, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err = <-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
