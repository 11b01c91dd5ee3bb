package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by ResponseCache.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache miss")

// Port: storage for raw provider response bodies.
// Keys are expected to be consistent (e.g., already normalized) by the caller.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte, ttl time.Duration) error
}
