package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
	"git.home.luguber.info/inful/orgsite/internal/server"
)

// ServeCmd implements the 'serve' command. It runs no build, so /metrics
// reports only Go runtime and process metrics; build metrics are exported
// with `orgsite build --metrics-textfile`.
type ServeCmd struct {
	Output string `short:"o" help:"Directory to serve (overrides output.directory)"`
	Addr   string `help:"Listen address (overrides serve.addr)"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if s.Output != "" {
		cfg.Output.Directory = s.Output
	}
	if s.Addr != "" {
		cfg.Serve.Addr = s.Addr
	}

	if info, err := os.Stat(cfg.Output.Directory); err != nil || !info.IsDir() {
		return ferrors.NotFoundError("output directory not found, run `orgsite build` first").
			WithContext("path", cfg.Output.Directory).
			Build()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := server.New(server.Options{Addr: cfg.Serve.Addr, Root: cfg.Output.Directory})
	if err := srv.Serve(ctx); err != nil {
		return ferrors.RuntimeError("server failed").
			WithCause(err).
			WithContext("addr", cfg.Serve.Addr).
			Build()
	}
	return nil
}
