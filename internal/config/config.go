package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int   `env:"LOG_LEVEL" envDefault:"0"`
	API      API   `envPrefix:"API_"`
	State    State `envPrefix:"STATE_"`
	Redis    Redis `envPrefix:"REDIS_"`
}

// API contains backend connection parameters. The request timeout is
// fixed in the request pipeline and deliberately not configurable.
type API struct {
	BaseURL        string  `env:"BASE_URL" envDefault:"http://localhost:8000"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"1"`
}

// State contains parameters for the local session state store.
type State struct {
	File string `env:"FILE" envDefault:".feedbackctl.json"`
}

// Redis contains parameters for the optional redis-backed state store.
// When Addr is empty the file store is used.
type Redis struct {
	Addr      string `env:"ADDR" envDefault:""`
	Password  string `env:"PASSWORD" envDefault:""`
	DB        int    `env:"DB" envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"feedbackctl"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
