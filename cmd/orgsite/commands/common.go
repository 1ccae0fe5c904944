package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/orgsite/internal/config"
	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
)

// LogLevelEnv overrides the log level when -v is not given.
const LogLevelEnv = "ORGSITE_LOG_LEVEL"

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default orgsite.yaml when present)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" help:"Build the site from exported org-mode articles"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
	Locate LocateCmd `cmd:"" help:"List source documents and whether they parse, without writing"`
	Serve  ServeCmd  `cmd:"" help:"Serve a built site directory (/metrics carries runtime metrics only)"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(newLogger(os.Stderr, c.logLevel(""), config.LogFormatText))
	return nil
}

// logLevel picks -v first, then ORGSITE_LOG_LEVEL, then the configured level.
func (c *CLI) logLevel(configured string) slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	if env := os.Getenv(LogLevelEnv); env != "" {
		return config.NormalizeLogLevel(env).SlogLevel()
	}
	return config.NormalizeLogLevel(configured).SlogLevel()
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig resolves the configuration and reapplies logging from its logging section.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Resolve(root.Config)
	if err != nil {
		return nil, classifyConfigError(err)
	}
	logger := newLogger(os.Stderr, root.logLevel(cfg.Logging.Level), config.NormalizeLogFormat(cfg.Logging.Format))
	slog.SetDefault(logger)
	if g != nil {
		g.Logger = logger
	}
	return cfg, nil
}

func classifyConfigError(err error) error {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return ferrors.NotFoundError("configuration file not found").WithCause(err).Build()
	case errors.Is(err, config.ErrInvalidConfig):
		return ferrors.ValidationError("invalid configuration").WithCause(err).Build()
	default:
		return ferrors.ConfigError("failed to load configuration").WithCause(err).Build()
	}
}

func stdout(g *Global) io.Writer {
	if g != nil && g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}
