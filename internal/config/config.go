// Package config loads the server configuration from the environment
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "POKEMON_EXPLORER_"

// Config holds everything the server needs to start
type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCPort       int           `env:"GRPC_PORT" envDefault:"50051"` // 0 disables the health server
	APIBaseURL     string        `env:"API_BASE_URL" envDefault:"https://pokeapi.co/api/v2/"`
	SpriteBaseURL  string        `env:"SPRITE_BASE_URL" envDefault:"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	RedisAddr      string        `env:"REDIS_ADDR"` // empty keeps listing views in memory
	ViewTTL        time.Duration `env:"VIEW_TTL" envDefault:"30m"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	OTelEndpoint   string        `env:"OTEL_ENDPOINT"`
	OTelEnabled    bool          `env:"OTEL_ENABLED" envDefault:"true"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot type-check
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("HTTPAddr", c.HTTPAddr, vb)
	errors.ValidateRange("GRPCPort", c.GRPCPort, 0, 65535, vb)
	errors.ValidateAbsoluteURL("APIBaseURL", c.APIBaseURL, vb)
	errors.ValidateAbsoluteURL("SpriteBaseURL", c.SpriteBaseURL, vb)
	errors.ValidatePositiveDuration("HTTPTimeout", c.HTTPTimeout, vb)
	errors.ValidatePositiveDuration("ViewTTL", c.ViewTTL, vb)
	if _, err := c.SlogLevel(); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// SlogLevel converts LogLevel to a slog.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))
	return level, err
}
