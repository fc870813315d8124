package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "bootcamp-api", cfg.App.Name)
	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int64(1000000), cfg.Upload.MaxBytes)
	assert.Equal(t, "./public/uploads", cfg.Upload.Dir)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.Expiry)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("MAX_FILE_UPLOAD", "52428800")
	t.Setenv("JWT_EXPIRATION", "15m")
	t.Setenv("REDIS_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, int64(52428800), cfg.Upload.MaxBytes)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiry)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_EXPIRATION", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.Expiry)
}

func TestRedisAddress(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddress())
}
