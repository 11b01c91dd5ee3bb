package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"travel-compare-service/internal/adapters/cache"
	"travel-compare-service/internal/adapters/events"
	"travel-compare-service/internal/adapters/geoapify"
	"travel-compare-service/internal/api"
	"travel-compare-service/internal/api/handlers"
	"travel-compare-service/internal/config"
	"travel-compare-service/internal/platform/db"
	"travel-compare-service/internal/platform/metrics"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"
	"travel-compare-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// main is the application composition root.
// It wires concrete adapters (Geoapify, caches, NATS) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		obs.NewLogger("info", "json").WithError(err).Fatal("load config")
	}

	log := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	if cfg.GeoapifyAPIKey == "" {
		return errors.New("GEOAPIFY_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()

	responseCache, closeCache, err := openCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	opts := []geoapify.Option{
		geoapify.WithBaseURL(cfg.GeoapifyBaseURL),
		geoapify.WithTimeout(cfg.ProviderTimeout),
		geoapify.WithRetry(cfg.ProviderMaxAttempts, cfg.ProviderBackoff),
		geoapify.WithLogger(log),
		geoapify.WithMetrics(collector),
	}
	if responseCache != nil {
		opts = append(opts, geoapify.WithCache(responseCache, cfg.CacheTTL))
	}
	client, err := geoapify.NewGeoapifyClient(cfg.GeoapifyAPIKey, opts...)
	if err != nil {
		return err
	}

	publisher, closePublisher, err := openPublisher(cfg, log, collector)
	if err != nil {
		return err
	}
	defer closePublisher()

	fetcher := services.NewRouteFetcher(client, log, collector)
	search := services.NewRouteSearchService(fetcher, publisher, log, collector)

	renderer := func(surface ports.MapSurface) handlers.RouteRenderer {
		return services.NewMapRouteRenderer(client, surface, cfg.RenderConcurrency, log, collector)
	}

	router := api.NewRouter(api.Deps{
		Searcher:       search,
		Renderer:       renderer,
		Geocoder:       client,
		Metrics:        collector,
		Log:            log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Timeouts are tuned for cold-cache searches (external API latency).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":  srv.Addr,
			"cache": cfg.CacheBackend,
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openCache returns nil for CACHE_BACKEND=none.
func openCache(ctx context.Context, cfg *config.Config, log *logrus.Logger) (ports.ResponseCache, func(), error) {
	switch cfg.CacheBackend {
	case config.CacheRedis:
		rc, err := cache.NewRedisResponseCache(cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		if err := rc.Ping(ctx); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return rc, func() { _ = rc.Close() }, nil

	case config.CachePostgres:
		sqlDB, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return cache.NewSQLResponseCache(sqlDB, log), func() { _ = sqlDB.Close() }, nil

	default:
		return nil, func() {}, nil
	}
}

func openPublisher(cfg *config.Config, log *logrus.Logger, m *metrics.Collector) (ports.SearchEventPublisher, func(), error) {
	if cfg.NATSURL == "" {
		return events.NopPublisher{}, func() {}, nil
	}

	p, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject, log, m)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}
