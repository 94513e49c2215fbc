package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Port                     int           `env:"PORT" envDefault:"8080"`
	AppEnv                   string        `env:"APP_ENV" envDefault:"development"`
	StorageBackend           string        `env:"STORAGE_BACKEND" envDefault:"postgres"`
	DatabaseURL              string        `env:"DATABASE_URL,required"`
	AutoMigrate              bool          `env:"AUTO_MIGRATE" envDefault:"true"`
	RedisURL                 string        `env:"REDIS_URL"`
	LogLevel                 string        `env:"LOG_LEVEL" envDefault:"info"`
	SessionTTLHours          int           `env:"SESSION_TTL_HOURS" envDefault:"168"`
	SessionSweepInterval     time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"0s"`
	LoginRateLimitPerMin     int           `env:"LOGIN_RATE_LIMIT_PER_MIN" envDefault:"5"`
	SubscribeRateLimitPerMin int           `env:"SUBSCRIBE_RATE_LIMIT_PER_MIN" envDefault:"10"`
	StaticDir                string        `env:"STATIC_DIR" envDefault:"static"`
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c *Config) Validate() error {
	switch c.AppEnv {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.AppEnv)
	}

	switch c.StorageBackend {
	case BackendPostgres, BackendSQLite:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendSQLite, c.StorageBackend)
	}

	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	if c.LoginRateLimitPerMin <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT_PER_MIN must be positive")
	}
	if c.SubscribeRateLimitPerMin <= 0 {
		return fmt.Errorf("SUBSCRIBE_RATE_LIMIT_PER_MIN must be positive")
	}
	if c.SessionSweepInterval < 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must not be negative")
	}

	if c.IsProduction() {
		if c.RedisURL == "" {
			log.Warn().Msg("REDIS_URL is empty in production: rate limits are per-instance only")
		} else if strings.HasPrefix(c.RedisURL, "redis://") {
			log.Warn().Msg("REDIS_URL uses redis:// (not TLS) in production: consider using rediss://")
		}
		if c.StorageBackend == BackendSQLite {
			log.Warn().Msg("STORAGE_BACKEND=sqlite in production: data lives on the local disk")
		}
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
