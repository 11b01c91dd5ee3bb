package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/sirupsen/logrus"
)

// SQLResponseCache is a Postgres-backed cache for raw provider response bodies.
type SQLResponseCache struct {
	DB  *sql.DB
	Log logrus.FieldLogger

	now func() time.Time
}

func NewSQLResponseCache(db *sql.DB, log logrus.FieldLogger) *SQLResponseCache {
	if log == nil {
		log = obs.Discard()
	}
	return &SQLResponseCache{DB: db, Log: log, now: time.Now}
}

// Get returns the cached body for key, or ports.ErrCacheMiss when the key is
// absent or expired.
func (s *SQLResponseCache) Get(ctx context.Context, key string) (_ []byte, err error) {
	defer obs.Time(ctx, s.Log, "response.cache.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("response cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, errors.New("get response cache: key must not be empty")
	}

	q := `
	SELECT body
	FROM provider_cache
	WHERE cache_key = $1
		AND expires_at > $2;
	`

	var body []byte
	err = s.DB.QueryRowContext(ctx, q, key, s.now().UTC()).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get response cache: query provider_cache table: %w", err)
	}

	return body, nil
}

// Put stores body under key until ttl elapses, replacing any previous entry.
func (s *SQLResponseCache) Put(ctx context.Context, key string, body []byte, ttl time.Duration) (err error) {
	defer obs.Time(ctx, s.Log, "response.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("response cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert response cache: key must not be empty")
	}

	if ttl <= 0 {
		return nil
	}

	q := `
	INSERT INTO provider_cache (cache_key, body, expires_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (cache_key) DO UPDATE
	SET body = EXCLUDED.body,
		expires_at = EXCLUDED.expires_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, body, s.now().UTC().Add(ttl)); err != nil {
		return fmt.Errorf("insert response cache key=%q: %w", key, err)
	}

	return nil
}

// PurgeExpired deletes entries whose TTL has elapsed and reports how many
// rows were removed.
func (s *SQLResponseCache) PurgeExpired(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("response cache: db is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM provider_cache WHERE expires_at <= $1;`, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge response cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge response cache: rows affected: %w", err)
	}

	return n, nil
}
