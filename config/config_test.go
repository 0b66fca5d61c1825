package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAPIKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvPrefix + "_AI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearAPIKeys(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.Server.TrustProxy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 20*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "heuristic", cfg.AI.Extractor)
	assert.Equal(t, "extended", cfg.Allocation.Variant)
	assert.InDelta(t, 0.07, cfg.Projection.AnnualReturn, 1e-9)
	assert.Equal(t, "USD", cfg.Projection.Currency)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Empty(t, cfg.Cache.RedisAddr)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
	assert.Empty(t, cfg.AI.APIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearAPIKeys(t)
	t.Setenv("INVESPLANNER_SERVER_ADDR", ":9090")
	t.Setenv("INVESPLANNER_ALLOCATION_VARIANT", "simple")
	t.Setenv("INVESPLANNER_AI_TIMEOUT", "5s")
	t.Setenv("GEMINI_API_KEY", "from-gemini-env")
	t.Setenv("INVESPLANNER_SERVER_TRUST_PROXY", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "simple", cfg.Allocation.Variant)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "from-gemini-env", cfg.AI.APIKey)
	assert.True(t, cfg.Server.TrustProxy)
}

func TestLoad_PrefixedKeyWins(t *testing.T) {
	clearAPIKeys(t)
	t.Setenv("INVESPLANNER_AI_API_KEY", "prefixed")
	t.Setenv("GOOGLE_API_KEY", "google")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.AI.APIKey)
}

func TestLoad_File(t *testing.T) {
	clearAPIKeys(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log:
  level: debug
ai:
  extractor: placeholder
projection:
  annual_return: 0.05
  currency: EUR
cache:
  redis_addr: localhost:6379
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "placeholder", cfg.AI.Extractor)
	assert.InDelta(t, 0.05, cfg.Projection.AnnualReturn, 1e-9)
	assert.Equal(t, "EUR", cfg.Projection.Currency)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, "extended", cfg.Allocation.Variant)
}

func TestLoad_MissingFile(t *testing.T) {
	clearAPIKeys(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidVariant(t *testing.T) {
	clearAPIKeys(t)
	t.Setenv("INVESPLANNER_ALLOCATION_VARIANT", "optimized")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocation.variant")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:     ServerConfig{Addr: ":8080"},
			AI:         AIConfig{Timeout: time.Second, InitTimeout: time.Second, Extractor: "heuristic"},
			Allocation: AllocationConfig{Variant: "extended"},
			RateLimit:  RateLimitConfig{Capacity: 1, Refill: time.Second},
			Projection: ProjectionConfig{AnnualReturn: 0.07},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.AI.Extractor = "llm"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.RateLimit.Capacity = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Projection.AnnualReturn = 3
	assert.Error(t, cfg.Validate())
}
