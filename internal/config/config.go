package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const envProduction = "production"

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `env:"APP_NAME, default=dental-records"`
	Env                   string `env:"APP_ENV, default=development"`
	Host                  string `env:"APP_HOST, default=0.0.0.0"`
	Port                  string `env:"APP_PORT, default=8080"`
	Version               string `env:"APP_VERSION, default=dev"`
	RequestTimeoutSeconds int    `env:"HTTP_REQUEST_TIMEOUT_SECONDS, default=30"`
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string `env:"DATABASE_URL"`
	MaxConns       int32  `env:"POSTGRES_MAX_CONNS, default=10"`
	MinConns       int32  `env:"POSTGRES_MIN_CONNS, default=2"`
	RunMigrations  bool   `env:"POSTGRES_RUN_MIGRATIONS, default=true"`
	ConnMaxIdleSec int32  `env:"POSTGRES_CONN_MAX_IDLE_SECONDS, default=30"`
	ConnMaxLifeSec int32  `env:"POSTGRES_CONN_MAX_LIFE_SECONDS, default=300"`
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr           string `env:"REDIS_ADDR, default=127.0.0.1:6379"`
	Password       string `env:"REDIS_PASSWORD"`
	DB             int    `env:"REDIS_DB, default=0"`
	DialTimeoutSec int    `env:"REDIS_DIAL_TIMEOUT_SECONDS, default=5"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL, default=info"`
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	BcryptCost        int    `env:"AUTH_BCRYPT_COST, default=12"`
	SessionTTLSeconds int    `env:"AUTH_SESSION_TTL_SECONDS, default=86400"`
	SessionCookieName string `env:"AUTH_SESSION_COOKIE_NAME, default=session_id"`
}

// Load reads configuration from the environment (and an optional .env file),
// applying defaults where possible.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom decodes configuration using the given lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.SessionTTLSeconds <= 0 {
		return fmt.Errorf("invalid AUTH_SESSION_TTL_SECONDS: %d", c.Auth.SessionTTLSeconds)
	}
	if strings.TrimSpace(c.Auth.SessionCookieName) == "" {
		return fmt.Errorf("AUTH_SESSION_COOKIE_NAME must not be empty")
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// IsProduction reports whether the service runs in the production environment.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, envProduction)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// DialTimeout returns the Redis dial timeout.
func (r RedisConfig) DialTimeout() time.Duration {
	if r.DialTimeoutSec <= 0 {
		return 0
	}
	return time.Duration(r.DialTimeoutSec) * time.Second
}

// SessionTTL returns the fixed lifetime of a login session.
func (a AuthConfig) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLSeconds) * time.Second
}
