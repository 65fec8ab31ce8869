// SPDX-License-Identifier: MIT

// Package config loads lvroute settings from an optional YAML file and
// LVROUTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/tsp"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "lvroute.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVROUTE_"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

// Config holds the settings shared by every command.
type Config struct {
	// Graph is the path of the graph file (JSON or YAML).
	Graph string `yaml:"graph"`

	// Start is the default tour anchor; empty means any start.
	Start string `yaml:"start"`

	// Threshold is the node count from which tours need confirmation.
	Threshold int `yaml:"threshold"`

	// Workers is the all-pairs build fan-out.
	Workers int `yaml:"workers"`

	// Strict rejects graphs mixing list and cost entries.
	Strict bool `yaml:"strict"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Threshold: tsp.DefaultThreshold,
		Workers:   1,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Loader reads Config values. Getenv is swappable for tests.
type Loader struct {
	Getenv func(string) string
}

// NewLoader returns a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{Getenv: os.Getenv}
}

// Load builds a Config from defaults, then the YAML file, then environment
// overrides, and validates the result.
//
// An explicit path must exist. With an empty path DefaultFileName is used
// when present.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" && exists(DefaultFileName) {
		path = DefaultFileName
	}
	if path != "" {
		if err := readYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	l.applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) applyEnv(cfg *Config) {
	cfg.Graph = l.getEnv("GRAPH", cfg.Graph)
	cfg.Start = l.getEnv("START", cfg.Start)
	cfg.Threshold = l.getEnvInt("THRESHOLD", cfg.Threshold)
	cfg.Workers = l.getEnvInt("WORKERS", cfg.Workers)
	cfg.Strict = l.getEnvBool("STRICT", cfg.Strict)
	cfg.LogLevel = l.getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = l.getEnv("LOG_FORMAT", cfg.LogFormat)
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Threshold < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "threshold must be at least 1"), "threshold", c.Threshold)
	}
	if c.Workers < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "workers must be at least 1"), "workers", c.Workers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "unknown log level"), "log_level", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "unknown log format"), "log_format", c.LogFormat)
	}

	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// readYAML decodes the file at path over cfg.
func readYAML(path string, cfg *Config) error {
	// #nosec G304 -- the path is chosen by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", ErrConfigReadFailed, err), "path", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", ErrConfigParseFailed, err), "path", path)
	}

	return nil
}

// getEnv gets an environment variable with a default value
func (l *Loader) getEnv(key, defaultValue string) string {
	if value := l.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func (l *Loader) getEnvBool(key string, defaultValue bool) bool {
	value := l.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func (l *Loader) getEnvInt(key string, defaultValue int) int {
	if value := l.Getenv(EnvPrefix + key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
