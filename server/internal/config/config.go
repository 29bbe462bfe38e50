package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the web front-end.
// Environment variables are parsed with the GYMTRACK_ prefix.
type Config struct {
	// APIURL is the gym API base URL every endpoint is appended to.
	APIURL string `envconfig:"API_URL" required:"true"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string      `envconfig:"LOG_LEVEL" default:"info"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"3000"`

	// HTTPTimeout bounds calls to the gym API; zero leaves them unbounded.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`

	// Debug dumps every API request and response to the log.
	Debug bool `envconfig:"DEBUG" default:"false"`

	// Health probing of the gym API
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// New creates a new Config by parsing environment variables.
// Example: GYMTRACK_API_URL, GYMTRACK_HTTP_PORT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("GYMTRACK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("api_url", cfg.APIURL).
		Int("port", cfg.HTTPPort).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate rejects values envconfig accepts but the service cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if c.APIURL == "" || err != nil || !u.IsAbs() {
		return fmt.Errorf("invalid API_URL: %q", c.APIURL)
	}
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("invalid HTTP_TIMEOUT: %s", c.HTTPTimeout)
	}
	if c.HealthIntervalSeconds <= 0 {
		return fmt.Errorf("invalid HEALTH_INTERVAL_SECONDS: %d", c.HealthIntervalSeconds)
	}
	return nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting(apiURL string) *Config {
	return &Config{
		APIURL:                    apiURL,
		Environment:               EnvTesting,
		LogLevel:                  "debug",
		HTTPPort:                  3000,
		HealthIntervalSeconds:     1,
		HealthProbeTimeoutSeconds: 1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
