package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds the website configuration.
type Config struct {
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Canonical origin used for OpenGraph URLs
	BaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:4002"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ListenAddr returns host:port for http.Server.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// IsProduction reports whether the site runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks values env parsing cannot catch.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("WEBSITE_PORT %d out of range 1-65535", c.Port)
	}
	for name, d := range map[string]time.Duration{
		"SERVER_READ_TIMEOUT":  c.ReadTimeout,
		"SERVER_WRITE_TIMEOUT": c.WriteTimeout,
		"SERVER_IDLE_TIMEOUT":  c.IdleTimeout,
		"SHUTDOWN_TIMEOUT":     c.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.BaseURL == "" {
		return errors.New("SITE_BASE_URL must not be empty")
	}
	return nil
}

// NewConfig parses the environment into a Config.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads .env and then .env.local from dir. Missing files are ignored;
// .env never overwrites variables already set, .env.local always does.
func LoadDotEnv(dir string) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	_ = godotenv.Overload(filepath.Join(dir, ".env.local"))
}
