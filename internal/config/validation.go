package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks a defaulted configuration. Every error wraps ErrInvalidConfig.
func Validate(cfg *Config) error {
	validators := []func(*Config) error{
		validateSource,
		validateOutput,
		validateStatic,
		validateBuild,
		validateSite,
	}
	for _, v := range validators {
		if err := v(cfg); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

func validateSource(cfg *Config) error {
	if strings.TrimSpace(cfg.Source.Directory) == "" {
		return fmt.Errorf("source.directory is required")
	}
	ext := cfg.Source.Extension
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("source.extension %q must look like .html", ext)
	}
	return nil
}

func validateOutput(cfg *Config) error {
	if strings.TrimSpace(cfg.Output.Directory) == "" {
		return fmt.Errorf("output.directory is required")
	}
	out, err := filepath.Abs(cfg.Output.Directory)
	if err != nil {
		return fmt.Errorf("output.directory: %w", err)
	}
	src, err := filepath.Abs(cfg.Source.Directory)
	if err != nil {
		return fmt.Errorf("source.directory: %w", err)
	}
	if within(src, out) {
		return fmt.Errorf("output.directory %s must not contain source.directory %s", cfg.Output.Directory, cfg.Source.Directory)
	}
	return nil
}

func validateStatic(cfg *Config) error {
	for i, p := range cfg.Static.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("static.paths[%d] is empty", i)
		}
	}
	return nil
}

func validateBuild(cfg *Config) error {
	if cfg.Build.Workers < 0 {
		return fmt.Errorf("build.workers must be >= 0, got %d", cfg.Build.Workers)
	}
	return nil
}

func validateSite(cfg *Config) error {
	for k := range cfg.Site {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("site keys must not be empty")
		}
	}
	return nil
}

// within reports whether path equals dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
