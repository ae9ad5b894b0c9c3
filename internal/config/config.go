package config

import (
	"github.com/caarlos0/env/v11"

	"launchpad/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables via caarlos0/env; nested sections are
// tagged with envPrefix. See the types in the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Sale configures the platform identities for the settlement engine
	// (SALE_ prefix).
	Sale configs.Sale `envPrefix:"SALE_"`
}

// Load reads configuration from environment variables, applying the declared
// defaults for anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
