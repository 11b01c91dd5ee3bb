package main

import (
	"context"
	"flag"
	"strings"
	"time"
	"travel-compare-service/internal/adapters/cache"
	"travel-compare-service/internal/config"
	"travel-compare-service/internal/platform/db"
	"travel-compare-service/internal/platform/obs"

	"github.com/sirupsen/logrus"
)

// dbtool prepares the Postgres response cache: it creates the schema and,
// with -purge, deletes expired entries.
func main() {
	purge := flag.Bool("purge", false, "delete expired cache entries after ensuring the schema")
	flag.Parse()

	cfg, log, err := setup()
	if err != nil {
		obs.NewLogger("info", "text").WithError(err).Fatal("load config")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	sqlDB, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer sqlDB.Close()

	log.Info("Initializing database schema...")
	if err := cache.InitSchema(ctx, sqlDB); err != nil {
		log.WithError(err).Fatal("schema initialization failed")
	}
	log.Info("Schema ready.")

	if !*purge {
		return
	}

	n, err := cache.NewSQLResponseCache(sqlDB, log).PurgeExpired(ctx)
	if err != nil {
		log.WithError(err).Fatal("purge failed")
	}
	log.WithField("rows", n).Info("Expired cache entries purged.")
}

// setup loads configuration (including .env) before building the logger, so
// LOG_LEVEL and LOG_FORMAT from .env apply.
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, obs.NewLogger(cfg.LogLevel, cfg.LogFormat), nil
}
