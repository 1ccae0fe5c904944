package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/orgsite/internal/build"
	"git.home.luguber.info/inful/orgsite/internal/config"
	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
	"git.home.luguber.info/inful/orgsite/internal/logfields"
	"git.home.luguber.info/inful/orgsite/internal/metrics"
	"git.home.luguber.info/inful/orgsite/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output          string `short:"o" help:"Output directory (overrides output.directory)"`
	Source          string `help:"Article source directory (overrides source.directory)"`
	Templates       string `help:"Theme directory (overrides templates.directory)"`
	Workers         int    `help:"Parse workers, 0 = one per CPU (overrides build.workers)" default:"-1"`
	Report          string `help:"Write a JSON build report to this file"`
	MetricsTextfile string `name:"metrics-textfile" help:"Write Prometheus metrics in text format to this file"`
	Clean           bool   `help:"Remove the output directory before building"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	b.apply(cfg)
	if err := config.Validate(cfg); err != nil {
		return ferrors.ValidationError("invalid build options").WithCause(err).Build()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunBuild(ctx, cfg, b.MetricsTextfile, stdout(g))
}

func (b *BuildCmd) apply(cfg *config.Config) {
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.Source != "" {
		cfg.Source.Directory = b.Source
	}
	if b.Templates != "" {
		cfg.Templates.Directory = b.Templates
	}
	if b.Workers >= 0 {
		cfg.Build.Workers = b.Workers
	}
	if b.Report != "" {
		cfg.Build.ReportFile = b.Report
	}
	if b.Clean {
		cfg.Output.Clean = true
	}
}

// RunBuild executes one build for cfg and prints a summary to out.
func RunBuild(ctx context.Context, cfg *config.Config, metricsFile string, out io.Writer) error {
	static, err := site.InitStatic(cfg.Site)
	if errors.Is(err, site.ErrStaticInitialized) {
		slog.Debug("Static context already initialized; using build-local context")
		static = site.NewStatic(cfg.Site)
	}

	svc := build.NewBuildService()
	var reg *prom.Registry
	if metricsFile != "" {
		reg = prom.NewRegistry()
		svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	result, runErr := svc.Run(ctx, build.BuildRequest{Config: cfg, Static: static})

	if reg != nil {
		if err := metrics.WriteTextfile(reg, metricsFile); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(metricsFile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	_, _ = fmt.Fprintf(out, "Built %d articles (%d skipped), %d pages into %s [%s]\n",
		result.Articles, result.Failures, result.PagesWritten, result.OutputPath, result.Status)
	return nil
}
