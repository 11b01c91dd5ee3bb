package api

import (
	"net/http"
	"time"
	"travel-compare-service/internal/api/handlers"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Metrics is the HTTP-facing part of the Prometheus collector.
type Metrics interface {
	HTTPObserved(method, route string, status int, d time.Duration)
	Handler() http.Handler
}

type Deps struct {
	Searcher       handlers.RouteSearcher
	Renderer       handlers.RendererFactory
	Geocoder       ports.Geocoder
	Metrics        Metrics
	Log            logrus.FieldLogger
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = obs.Discard()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(accessLog(d.Log, d.Metrics))
	router.Use(cors.New(corsConfig(d.AllowedOrigins)))

	router.GET("/health", handlers.Health)
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	routeHandler := &handlers.RouteHandler{Searcher: d.Searcher, Log: d.Log}
	mapHandler := &handlers.MapHandler{NewRenderer: d.Renderer, Log: d.Log}
	geocodeHandler := &handlers.GeocodeHandler{Geocoder: d.Geocoder, Log: d.Log}

	api := router.Group("/api")
	{
		api.POST("/routes/search", routeHandler.Search)
		api.POST("/map/render", mapHandler.Render)
		api.GET("/geocode", geocodeHandler.Autocomplete)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	return cfg
}
