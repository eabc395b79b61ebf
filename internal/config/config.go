// Package config loads the CLI's handful of tunables through a layered
// koanf configuration: defaults, then an optional YAML file, then
// FLOWCUT_-prefixed environment variables, each layer overriding the
// last. flowcut is a one-shot CLI with no network listener or
// persistence, so its configuration surface is intentionally small:
// logging and solver tunables only.
package config

import "strings"

// Config is the root configuration structure.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Solver SolverConfig `koanf:"solver"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// SolverConfig configures the bucket-count hints internal/vertexstore
// and internal/edgestore are constructed with. Zero means derive the
// bucket count from the input file's record count instead.
type SolverConfig struct {
	VertexBucketHint int `koanf:"vertex_bucket_hint"`
	EdgeBucketHint   int `koanf:"edge_bucket_hint"`
}

// Validate checks the configuration for internally-inconsistent values.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		c.Log.Level = "info"
	}
	if c.Solver.VertexBucketHint < 0 {
		c.Solver.VertexBucketHint = 0
	}
	if c.Solver.EdgeBucketHint < 0 {
		c.Solver.EdgeBucketHint = 0
	}
	return nil
}
