package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"blogpost-api/config"
	"blogpost-api/logger"

	"go.uber.org/zap"
)

// Server owns the HTTP listener for the API
type Server struct {
	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

// New wraps handler in an http.Server configured with cfg timeouts
func New(handler http.Handler, cfg config.ServerConfig) *Server {
	return &Server{
		srv: &http.Server{
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start binds addr and serves in the background. Port 0 picks a free port.
func (s *Server) Start(addr string) error {
	if s.listener != nil {
		return errors.New("server already started")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.srv.Addr = ln.Addr().String()
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("Server stopped unexpectedly", zap.Error(err))
			return
		}
		logger.Logger.Info("Server stopped")
	}()

	logger.Logger.Info("Server listening", zap.String("addr", s.srv.Addr))
	return nil
}

// Addr returns the bound address, valid after Start
func (s *Server) Addr() string {
	return s.srv.Addr
}

// URL returns the base http URL of the running server
func (s *Server) URL() string {
	return "http://" + s.Addr()
}

// Stop shuts down gracefully, waiting for in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	if s.listener == nil {
		return nil
	}
	err := s.srv.Shutdown(ctx)
	select {
	case <-s.done:
	case <-ctx.Done():
	}
	s.listener = nil
	return err
}
