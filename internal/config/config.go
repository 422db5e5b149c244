// SPDX-License-Identifier: MIT

// Package config loads rowreduce CLI settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/rowreduce/internal/render"
)

// Prefix is the environment variable prefix, e.g. ROWREDUCE_FORMAT.
const Prefix = "ROWREDUCE"

// Config holds all CLI configuration.
type Config struct {
	Logging LogConfig
	Output  OutputConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL"`
	Development bool   `envconfig:"LOG_DEV"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format  string `envconfig:"FORMAT"`
	Verify  bool   `envconfig:"VERIFY"`
	NoColor bool   `envconfig:"NO_COLOR"`
}

// Load starts from Default and overrides it with ROWREDUCE_* environment
// variables. Each section is processed on its own so keys stay flat
// (ROWREDUCE_FORMAT, not ROWREDUCE_OUTPUT_FORMAT).
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process(Prefix, &cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg.Output); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when the environment is empty.
func Default() *Config {
	return &Config{
		Logging: LogConfig{Level: "warn"},
		Output:  OutputConfig{Format: render.FormatText},
	}
}

// Validate rejects unknown output formats.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case render.FormatText, render.FormatJSON, render.FormatYAML:
		return nil
	default:
		return fmt.Errorf("config: unknown output format %q (want text, json or yaml)", c.Output.Format)
	}
}
