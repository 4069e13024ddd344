// Package config loads service settings from defaults, an optional YAML
// file and the environment, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds server configuration.
type Config struct {
	// Server identity
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Address  string `yaml:"address"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	// Rate limiting, applied to /api routes only
	RateLimit      float64 `yaml:"rate_limit"` // requests per second
	RateLimitBurst int     `yaml:"rate_limit_burst"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Telemetry Telemetry `yaml:"telemetry"`
}

// Telemetry toggles the OTLP exporters.
type Telemetry struct {
	Traces  bool `yaml:"traces"`
	Metrics bool `yaml:"metrics"`
	Logs    bool `yaml:"logs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Name:            "utility-api",
		Version:         "dev",
		Port:            8080,
		LogLevel:        "info",
		RateLimit:       100,
		RateLimitBurst:  200,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		Telemetry: Telemetry{
			Traces:  true,
			Metrics: true,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and environment overrides, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		c.Name = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ADDRESS"); v != "" {
		c.Address = v
	}

	var errs []error
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	setInt("PORT", &c.Port)
	setInt("RATE_LIMIT_BURST", &c.RateLimitBurst)

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT: %w", err))
		} else {
			c.RateLimit = f
		}
	}

	// Allows matching the shutdown timeout to a K8s termination grace period.
	var shutdownSeconds int
	setInt("SHUTDOWN_TIMEOUT_SECONDS", &shutdownSeconds)
	if shutdownSeconds > 0 {
		c.ShutdownTimeout = time.Duration(shutdownSeconds) * time.Second
	}

	setBool("OTEL_TRACES_ENABLED", &c.Telemetry.Traces)
	setBool("OTEL_METRICS_ENABLED", &c.Telemetry.Metrics)
	setBool("OTEL_LOGS_ENABLED", &c.Telemetry.Logs)

	return errors.Join(errs...)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit must be positive, got %g", c.RateLimit))
	}
	if c.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit_burst must be positive, got %d", c.RateLimitBurst))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}
