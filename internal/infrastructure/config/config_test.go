package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"FOODFLOW_APP_NAME":          os.Getenv("FOODFLOW_APP_NAME"),
		"FOODFLOW_APP_ENV":           os.Getenv("FOODFLOW_APP_ENV"),
		"FOODFLOW_LOG_LEVEL":         os.Getenv("FOODFLOW_LOG_LEVEL"),
		"FOODFLOW_LOG_FORMAT":        os.Getenv("FOODFLOW_LOG_FORMAT"),
		"FOODFLOW_PRICING_CURRENCY":  os.Getenv("FOODFLOW_PRICING_CURRENCY"),
		"FOODFLOW_PRICING_TIE_BREAK": os.Getenv("FOODFLOW_PRICING_TIE_BREAK"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "foodflow-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
		assert.Equal(t, "ARS", cfg.Pricing.Currency)
		assert.Equal(t, "catalog-order", cfg.Pricing.TieBreak)
	})

	t.Run("loads values from environment variables with FOODFLOW prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOODFLOW_APP_NAME", "test-app")
		os.Setenv("FOODFLOW_APP_ENV", "staging")
		os.Setenv("FOODFLOW_LOG_LEVEL", "debug")
		os.Setenv("FOODFLOW_LOG_FORMAT", "json")
		os.Setenv("FOODFLOW_PRICING_CURRENCY", "UYU")
		os.Setenv("FOODFLOW_PRICING_TIE_BREAK", "lowest-id")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "staging", cfg.App.Env)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "UYU", cfg.Pricing.Currency)
		assert.Equal(t, "lowest-id", cfg.Pricing.TieBreak)
	})

	t.Run("rejects unknown tie break", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOODFLOW_PRICING_TIE_BREAK", "random")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TieBreak")
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOODFLOW_PRICING_CURRENCY", "GBP")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Currency")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOODFLOW_LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("requires json logs in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOODFLOW_APP_ENV", "production")
		os.Setenv("FOODFLOW_LOG_FORMAT", "console")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format must be json in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOODFLOW_APP_ENV", "production")
		os.Setenv("FOODFLOW_LOG_FORMAT", "json")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}
