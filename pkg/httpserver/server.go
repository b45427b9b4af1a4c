package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/uatoken/pkg/logger"
)

var (
	// ErrStart wraps listen and serve failures.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown wraps a graceful shutdown that did not finish in time.
	ErrShutdown = errors.New("failed to shut down HTTP server gracefully")
	// ErrRunning is returned by a second concurrent Run.
	ErrRunning = errors.New("HTTP server already running")
	// ErrClosed is returned by Run after Shutdown was requested.
	ErrClosed = errors.New("HTTP server closed")
)

// Server runs an http.Server until its context is cancelled, then drains
// in-flight requests. A Server serves at most once.
type Server struct {
	cfg   Config
	log   *slog.Logger
	ready chan struct{}

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	closed   bool
}

// New returns a Server for cfg. A nil log uses slog.Default().
func New(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		cfg:   cfg.withDefaults(),
		log:   log.With(logger.Component("httpserver")),
		ready: make(chan struct{}),
	}
}

// Run listens on the configured address and serves handler until ctx is
// done or Shutdown is called.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	srv, ln, err := s.listen(ctx, handler)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))
	close(s.ready)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var runErr error
	select {
	case <-ctx.Done():
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			s.log.ErrorContext(ctx, "http server shutdown failed", logger.Error(err))
		}
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) listen(ctx context.Context, handler http.Handler) (*http.Server, net.Listener, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return nil, nil, ErrClosed
	case s.srv != nil:
		return nil, nil, ErrRunning
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return nil, nil, errors.Join(ErrStart, err)
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		MaxHeaderBytes:    s.cfg.MaxHeaderBytes,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	return s.srv, ln, nil
}

// Ready is closed once the server is listening.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the bound address, or "" before Run starts listening.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops accepting connections and waits up to the shutdown timeout
// for active requests. Only the first call does any work. Called before Run,
// it makes Run return ErrClosed.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	start := time.Now()
	err := srv.Shutdown(ctx)
	s.log.InfoContext(ctx, "http server stopped", logger.Duration(time.Since(start)))

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
