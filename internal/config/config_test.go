package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "local", cfg.RatingLock)
	assert.Equal(t, 10*time.Second, cfg.RatingLockTTL)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("db_driver: postgres\ndb_port: \"5432\"\n"), 0o600))

	t.Setenv("SKILLSWAP_DB_PORT", "6543")
	t.Setenv("SKILLSWAP_RATING_LOCK", "redis")
	t.Setenv("SKILLSWAP_RATING_LOCK_TTL", "45s")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "6543", cfg.DBPort)
	assert.Equal(t, "redis", cfg.RatingLock)
	assert.Equal(t, 45*time.Second, cfg.RatingLockTTL)
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("SKILLSWAP_DB_DRIVER", "oracle")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("SKILLSWAP_DB_DRIVER", "mysql")
	t.Setenv("SKILLSWAP_RATING_LOCK_TTL", "0s")
	_, err = Load("")
	assert.Error(t, err, "a zero lock ttl would never expire")

	t.Setenv("SKILLSWAP_RATING_LOCK_TTL", "10s")
	t.Setenv("SKILLSWAP_GIN_MODE", "release")
	_, err = Load("")
	assert.Error(t, err, "release mode must refuse default secrets")
}
