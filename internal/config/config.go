package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CacheNone     = "none"
	CacheRedis    = "redis"
	CachePostgres = "postgres"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	GeoapifyAPIKey  string
	GeoapifyBaseURL string

	ProviderTimeout     time.Duration
	ProviderMaxAttempts int
	ProviderBackoff     time.Duration
	RenderConcurrency   int

	CacheBackend string
	CacheTTL     time.Duration
	RedisURL     string
	DatabaseURL  string

	NATSURL     string
	NATSSubject string

	CORSAllowedOrigins []string
}

// Load reads configuration from .env (if present) and the environment.
// Malformed numeric values are rejected rather than defaulted.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            Get("PORT", "8080"),
		LogLevel:        Get("LOG_LEVEL", "info"),
		LogFormat:       Get("LOG_FORMAT", "json"),
		GeoapifyAPIKey:  strings.TrimSpace(os.Getenv("GEOAPIFY_API_KEY")),
		GeoapifyBaseURL: strings.TrimRight(Get("GEOAPIFY_BASE_URL", "https://api.geoapify.com"), "/"),
		CacheBackend:    strings.ToLower(Get("CACHE_BACKEND", CacheNone)),
		RedisURL:        os.Getenv("REDIS_URL"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		NATSURL:         os.Getenv("NATS_URL"),
		NATSSubject:     Get("NATS_SUBJECT", "travel.search.completed"),
	}

	var err error
	if cfg.ProviderTimeout, err = millis("PROVIDER_TIMEOUT_MS", 10000); err != nil {
		return nil, err
	}
	if cfg.ProviderBackoff, err = millis("PROVIDER_BACKOFF_MS", 200); err != nil {
		return nil, err
	}
	if cfg.ProviderMaxAttempts, err = positiveInt("PROVIDER_MAX_ATTEMPTS", 3); err != nil {
		return nil, err
	}
	if cfg.RenderConcurrency, err = positiveInt("RENDER_CONCURRENCY", 4); err != nil {
		return nil, err
	}

	ttlSec, err := positiveInt("CACHE_TTL_SEC", 3600)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = time.Duration(ttlSec) * time.Second

	switch cfg.CacheBackend {
	case CacheNone:
	case CacheRedis:
		if strings.TrimSpace(cfg.RedisURL) == "" {
			return nil, fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=%s", CacheRedis)
		}
	case CachePostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when CACHE_BACKEND=%s", CachePostgres)
		}
	default:
		return nil, fmt.Errorf("invalid CACHE_BACKEND: %q", cfg.CacheBackend)
	}

	for _, o := range strings.Split(Get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func millis(key string, def int) (time.Duration, error) {
	n, err := positiveInt(key, def)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Millisecond, nil
}
