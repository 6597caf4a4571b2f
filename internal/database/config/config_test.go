package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		User:     "postgres",
		Password: "secret",
		DBName:   "nba_pickem",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	dsn := BuildDSN(cfg)

	assert.Equal(t, "host=localhost user=postgres password=secret dbname=nba_pickem port=5432 sslmode=disable TimeZone=UTC", dsn)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_SSLMODE", "DB_TIMEZONE"} {
			os.Unsetenv(key)
		}

		cfg := LoadConfigFromEnv()
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, "postgres", cfg.User)
		assert.Equal(t, "nba_pickem", cfg.DBName)
		assert.Equal(t, "5432", cfg.Port)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, "UTC", cfg.TimeZone)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Setenv("DB_HOST", "db.internal")
		os.Setenv("DB_NAME", "pickem_test")
		defer os.Unsetenv("DB_HOST")
		defer os.Unsetenv("DB_NAME")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, "pickem_test", cfg.DBName)
	})
}

func TestSanitizeError(t *testing.T) {
	cfg := Config{Password: "secret"}

	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, cfg))
	})

	t.Run("password redacted", func(t *testing.T) {
		err := errors.New(`pq: password authentication failed with "secret"`)

		sanitized := SanitizeError(err, cfg)

		require.Error(t, sanitized)
		assert.NotContains(t, sanitized.Error(), "secret")
		assert.Contains(t, sanitized.Error(), "***")
	})

	t.Run("empty password left alone", func(t *testing.T) {
		err := errors.New("connection refused")

		sanitized := SanitizeError(err, Config{})

		require.Error(t, sanitized)
		assert.Contains(t, sanitized.Error(), "connection refused")
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DB_RETRY_MAX_ATTEMPTS", "DB_RETRY_INITIAL_DELAY", "DB_RETRY_MAX_DELAY"} {
			os.Unsetenv(key)
		}

		cfg := LoadRetryConfigFromEnv()
		assert.Equal(t, 5, cfg.MaxAttempts)
		assert.Contains(t, cfg.RetryableErrors, "connection refused")
	})

	t.Run("custom values", func(t *testing.T) {
		os.Setenv("DB_RETRY_MAX_ATTEMPTS", "3")
		os.Setenv("DB_RETRY_INITIAL_DELAY", "500ms")
		defer os.Unsetenv("DB_RETRY_MAX_ATTEMPTS")
		defer os.Unsetenv("DB_RETRY_INITIAL_DELAY")

		cfg := LoadRetryConfigFromEnv()
		assert.Equal(t, 3, cfg.MaxAttempts)
		assert.Equal(t, 500*time.Millisecond, cfg.InitialDelay)
	})

	t.Run("invalid max attempts falls back", func(t *testing.T) {
		os.Setenv("DB_RETRY_MAX_ATTEMPTS", "not_a_number")
		defer os.Unsetenv("DB_RETRY_MAX_ATTEMPTS")

		cfg := LoadRetryConfigFromEnv()
		assert.Equal(t, 5, cfg.MaxAttempts)
	})
}
