package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"jobboard-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (dev, test, prod). It
	// selects the review window bounds.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Auth   configs.Auth   `envPrefix:"AUTH_"`
	Review configs.Review `envPrefix:"REVIEW_"`

	// Redis, Remote and Cache are only read by the client CLI.
	Redis  configs.Redis  `envPrefix:"REDIS_"`
	Remote configs.Remote `envPrefix:"REMOTE_"`
	Cache  configs.Cache  `envPrefix:"CACHE_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReviewBounds returns the review window bounds for the configured
// environment.
func (c Config) ReviewBounds() (minDelay, maxDelay time.Duration) {
	return c.Review.Bounds(c.Env)
}
