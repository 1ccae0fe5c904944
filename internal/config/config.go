// Package config loads orgsite.yaml.
//
// The file is read after .env.local and .env have been merged into the
// process environment (existing variables win) and ${VAR} references are
// expanded before YAML decoding. Defaults are applied after decoding, then
// the result is validated.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "orgsite.yaml"

var (
	// ErrConfigNotFound indicates an explicitly requested configuration file is missing.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigExists indicates Init refused to overwrite a file.
	ErrConfigExists = errors.New("configuration file already exists")
)

// Config is the root of orgsite.yaml.
type Config struct {
	Source    SourceConfig      `yaml:"source"`
	Output    OutputConfig      `yaml:"output"`
	Templates TemplatesConfig   `yaml:"templates"`
	Static    StaticConfig      `yaml:"static"`
	Build     BuildConfig       `yaml:"build"`
	Site      map[string]string `yaml:"site"`
	Serve     ServeConfig       `yaml:"serve"`
	Logging   LoggingConfig     `yaml:"logging"`
}

// SourceConfig locates the article tree.
type SourceConfig struct {
	Directory string `yaml:"directory"` // <directory>/<category>/<slug><extension>
	Extension string `yaml:"extension"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// TemplatesConfig selects the theme. An empty directory selects the embedded theme.
type TemplatesConfig struct {
	Directory string `yaml:"directory"`
}

// StaticConfig lists asset files or directories copied into the output root.
type StaticConfig struct {
	Paths []string `yaml:"paths"`
}

// BuildConfig tunes the build pipeline.
type BuildConfig struct {
	Workers    int    `yaml:"workers"`     // parse pool size, 0 = GOMAXPROCS
	ReportFile string `yaml:"report_file"` // optional JSON build report
}

// ServeConfig configures `orgsite serve`.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads, expands, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads path when given. With an empty path it loads DefaultPath if
// present and falls back to Default otherwise.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}
	loadEnvFiles()
	cfg := Default()
	return cfg, Validate(cfg)
}
