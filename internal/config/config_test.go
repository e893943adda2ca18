package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "dental-records", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, "session_id", cfg.Auth.SessionCookieName)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout())
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"APP_ENV":                  "Production",
		"APP_PORT":                 "9090",
		"DATABASE_URL":             "postgres://dental:secret@db:5432/dental",
		"REDIS_DB":                 "3",
		"AUTH_SESSION_TTL_SECONDS": "3600",
		"AUTH_BCRYPT_COST":         "10",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "postgres://dental:secret@db:5432/dental", cfg.Postgres.DSN)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadFromRejectsInvalidValues(t *testing.T) {
	t.Run("non numeric redis db", func(t *testing.T) {
		_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
			"REDIS_DB": "primary",
		}))
		assert.Error(t, err)
	})

	t.Run("zero session ttl", func(t *testing.T) {
		_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
			"AUTH_SESSION_TTL_SECONDS": "0",
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AUTH_SESSION_TTL_SECONDS")
	})
}
