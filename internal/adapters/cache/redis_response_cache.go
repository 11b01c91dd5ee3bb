package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisKeyPrefix = "travel:provider:"

// RedisResponseCache stores raw provider response bodies in Redis and lets
// Redis expire them.
type RedisResponseCache struct {
	Client *redis.Client
	Log    logrus.FieldLogger
}

// NewRedisResponseCache connects to the Redis instance at rawURL
// (redis://[:password@]host:port/db).
func NewRedisResponseCache(rawURL string, log logrus.FieldLogger) (*RedisResponseCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if log == nil {
		log = obs.Discard()
	}
	return &RedisResponseCache{Client: redis.NewClient(opts), Log: log}, nil
}

func (r *RedisResponseCache) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisResponseCache) Close() error {
	return r.Client.Close()
}

func (r *RedisResponseCache) Get(ctx context.Context, key string) (_ []byte, err error) {
	defer obs.Time(ctx, r.Log, "response.cache.Get")(&err)

	if strings.TrimSpace(key) == "" {
		return nil, errors.New("get response cache: key must not be empty")
	}

	body, err := r.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get response cache: %w", err)
	}

	return body, nil
}

func (r *RedisResponseCache) Put(ctx context.Context, key string, body []byte, ttl time.Duration) (err error) {
	defer obs.Time(ctx, r.Log, "response.cache.Put")(&err)

	if strings.TrimSpace(key) == "" {
		return errors.New("insert response cache: key must not be empty")
	}
	if ttl <= 0 {
		return nil
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+key, body, ttl).Err(); err != nil {
		return fmt.Errorf("insert response cache key=%q: %w", key, err)
	}

	return nil
}
