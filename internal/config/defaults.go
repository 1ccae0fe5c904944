package config

import "git.home.luguber.info/inful/orgsite/internal/articles"

// Default values.
const (
	DefaultSourceDir = "blog"
	DefaultOutputDir = "public"
	DefaultServeAddr = ":8080"
)

func applyDefaults(cfg *Config) {
	if cfg.Source.Directory == "" {
		cfg.Source.Directory = DefaultSourceDir
	}
	if cfg.Source.Extension == "" {
		cfg.Source.Extension = articles.DefaultExtension
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDir
	}
	if cfg.Site == nil {
		cfg.Site = map[string]string{}
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = DefaultServeAddr
	}
	cfg.Logging.Level = string(NormalizeLogLevel(cfg.Logging.Level))
	cfg.Logging.Format = string(NormalizeLogFormat(cfg.Logging.Format))
}
