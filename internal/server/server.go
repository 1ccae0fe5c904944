package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"gitlab.com/efronlicht/enve"

	"git.home.luguber.info/inful/orgsite/internal/logfields"
	"git.home.luguber.info/inful/orgsite/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr     string         // listen address, e.g. ":8080"
	Root     string         // materialized output directory
	Registry *prom.Registry // served on /metrics; nil serves the default registry
}

// Server serves one output directory.
type Server struct {
	opts Options
	http *http.Server
}

// New constructs a Server. Timeouts are read from READ_TIMEOUT, WRITE_TIMEOUT
// and IDLE_TIMEOUT.
func New(opts Options) *Server {
	s := &Server{opts: opts}
	s.http = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  enve.DurationOr("READ_TIMEOUT", 5*time.Second),
		WriteTimeout: enve.DurationOr("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  enve.DurationOr("IDLE_TIMEOUT", time.Minute),
	}
	return s
}

// Handler returns the full routing tree wrapped in the logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealth)
	mux.Handle("/metrics", metrics.HTTPHandler(s.opts.Registry))
	mux.Handle("/", newSiteHandler(s.opts.Root))
	return chain(slog.Default(), mux)
}

// Serve listens on the configured address and blocks until ctx is canceled,
// then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	s.http.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()
	slog.Info("Serving site", logfields.Addr(ln.Addr().String()), logfields.Output(s.opts.Root))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	slog.Debug("Shutting down server", logfields.Addr(ln.Addr().String()))
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
