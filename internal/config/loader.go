package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "FLOWCUT_"
	configEnvVar = "FLOWCUT_CONFIG_PATH"
)

// Loader loads configuration from layered sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths sets the search paths used to locate a YAML config
// file when FLOWCUT_CONFIG_PATH is unset.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// NewLoader constructs a Loader with the given options applied over the
// defaults (search config.yaml, ./config/config.yaml, FLOWCUT_ env
// prefix).
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"config.yaml", "config/config.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load layers defaults, an optional YAML file (explicit path or one
// found via WithConfigPaths), then FLOWCUT_-prefixed environment
// variables, and unmarshals + validates the result.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.loadConfigFile(explicitPath); err != nil {
		// A config file is optional; its absence is not fatal.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		"solver.vertex_bucket_hint": 0,
		"solver.edge_bucket_hint":   0,
	}
	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile(explicitPath string) error {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err == nil {
			return l.k.Load(file.Provider(explicitPath), yaml.Parser())
		}
		return fmt.Errorf("configured file %q not found", explicitPath)
	}

	if envPath := os.Getenv(configEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return l.k.Load(file.Provider(envPath), yaml.Parser())
		}
	}

	for _, path := range l.configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(absPath); err == nil {
			return l.k.Load(file.Provider(absPath), yaml.Parser())
		}
	}

	return fmt.Errorf("config file not found in paths: %v", l.configPaths)
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		trimmed := strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
		return strings.ReplaceAll(trimmed, "__", ".")
	}), nil)
}

// Load is a convenience function using default search paths.
func Load(explicitPath string) (*Config, error) {
	return NewLoader().Load(explicitPath)
}
