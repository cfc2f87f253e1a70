package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is everything the CLI needs to talk to the SiteShield backend and
// its identity provider. Values come from the environment, optionally seeded
// from a .env file in the working directory.
type Config struct {
	APIBaseURL string `env:"SITESHIELD_API_URL"`

	// Identity provider settings.
	TokenURL     string   `env:"SITESHIELD_TOKEN_URL"`
	ClientID     string   `env:"SITESHIELD_CLIENT_ID"`
	ClientSecret string   `env:"SITESHIELD_CLIENT_SECRET"`
	Audience     string   `env:"SITESHIELD_AUDIENCE"`
	Scopes       []string `env:"SITESHIELD_SCOPES" envSeparator:" " envDefault:"openid profile email offline_access"`

	// Local token cache.
	TokenDBFile string `env:"SITESHIELD_TOKEN_DB" envDefault:"siteshield-tokens.db"`

	RequestsPerMinute int           `env:"SITESHIELD_REQUESTS_PER_MINUTE" envDefault:"0"`
	RequestTimeout    time.Duration `env:"SITESHIELD_REQUEST_TIMEOUT" envDefault:"30s"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads configuration from the environment. A .env file is loaded
// first when present; real environment variables win over file values.
func LoadConfig() (Config, error) {
	// Ignore a missing .env file, it is a convenience not a requirement.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.APIBaseURL == "" {
		return errors.New("SITESHIELD_API_URL is required")
	}
	if c.TokenURL == "" {
		return errors.New("SITESHIELD_TOKEN_URL is required")
	}
	if c.ClientID == "" {
		return errors.New("SITESHIELD_CLIENT_ID is required")
	}
	return nil
}
