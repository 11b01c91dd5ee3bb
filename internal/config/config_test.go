package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "GEOAPIFY_API_KEY", "GEOAPIFY_BASE_URL",
		"PROVIDER_TIMEOUT_MS", "PROVIDER_MAX_ATTEMPTS", "PROVIDER_BACKOFF_MS",
		"RENDER_CONCURRENCY", "CACHE_BACKEND", "CACHE_TTL_SEC", "REDIS_URL",
		"DATABASE_URL", "NATS_URL", "NATS_SUBJECT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEOAPIFY_API_KEY", "  key-123 \n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "key-123", cfg.GeoapifyAPIKey)
	assert.Equal(t, "https://api.geoapify.com", cfg.GeoapifyBaseURL)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 3, cfg.ProviderMaxAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.ProviderBackoff)
	assert.Equal(t, 4, cfg.RenderConcurrency)
	assert.Equal(t, CacheNone, cfg.CacheBackend)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "travel.search.completed", cfg.NATSSubject)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROVIDER_MAX_ATTEMPTS", "1")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://travel.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.ProviderMaxAttempts)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, []string{"http://localhost:5173", "https://travel.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	cases := map[string]string{
		"PROVIDER_TIMEOUT_MS":   "soon",
		"PROVIDER_MAX_ATTEMPTS": "0",
		"RENDER_CONCURRENCY":    "-2",
		"CACHE_TTL_SEC":         "1h",
		"CACHE_BACKEND":         "memcached",
	}

	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRequiresBackendURLs(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_BACKEND", "postgres")
	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}
