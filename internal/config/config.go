// Package config loads service settings from defaults, an optional YAML file,
// and the environment, in that order of precedence (environment wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Hard ceiling mirrored from the exact solver; the service may only lower it.
const solverMaxWaypoints = 16

type Config struct {
	Port                string        `yaml:"port"`
	MaxWaypoints        int           `yaml:"max_waypoints"`
	MaxConcurrentSolves int           `yaml:"max_concurrent_solves"`
	SolveTimeout        time.Duration `yaml:"solve_timeout"`
	MaxBatchSize        int           `yaml:"max_batch_size"`
	LogLevel            string        `yaml:"log_level"`
	LogFormat           string        `yaml:"log_format"`
}

func Default() Config {
	return Config{
		Port:                "8080",
		MaxWaypoints:        12,
		MaxConcurrentSolves: 4,
		SolveTimeout:        30 * time.Second,
		MaxBatchSize:        20,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and environment overrides, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Port = Get("PORT", c.Port)
	c.LogLevel = Get("LOG_LEVEL", c.LogLevel)
	c.LogFormat = Get("LOG_FORMAT", c.LogFormat)

	ints := []struct {
		key string
		dst *int
	}{
		{"MAX_WAYPOINTS", &c.MaxWaypoints},
		{"MAX_CONCURRENT_SOLVES", &c.MaxConcurrentSolves},
		{"MAX_BATCH_SIZE", &c.MaxBatchSize},
	}
	for _, it := range ints {
		v := os.Getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("env %s=%q: %w", it.key, v, err)
		}
		*it.dst = n
	}

	if v := os.Getenv("SOLVE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("env SOLVE_TIMEOUT=%q: %w", v, err)
		}
		c.SolveTimeout = d
	}

	return nil
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("port must be non-empty"))
	}
	if c.MaxWaypoints < 1 || c.MaxWaypoints > solverMaxWaypoints {
		errs = append(errs, fmt.Errorf("max_waypoints must be between 1 and %d, got %d", solverMaxWaypoints, c.MaxWaypoints))
	}
	if c.MaxConcurrentSolves < 1 {
		errs = append(errs, fmt.Errorf("max_concurrent_solves must be positive, got %d", c.MaxConcurrentSolves))
	}
	if c.SolveTimeout <= 0 {
		errs = append(errs, fmt.Errorf("solve_timeout must be positive, got %s", c.SolveTimeout))
	}
	if c.MaxBatchSize < 1 {
		errs = append(errs, fmt.Errorf("max_batch_size must be positive, got %d", c.MaxBatchSize))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel))
	}

	return errors.Join(errs...)
}
