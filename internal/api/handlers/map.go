package handlers

import (
	"context"
	"net/http"
	"travel-compare-service/internal/adapters/mapsurface"
	"travel-compare-service/internal/api/dto"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/ports"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouteRenderer interface {
	Render(ctx context.Context, origin, destination domain.Location, routes []domain.RouteOption) error
}

// RendererFactory binds a renderer to the surface it draws on.
type RendererFactory func(surface ports.MapSurface) RouteRenderer

// MapHandler renders each request onto its own scene, so concurrent clients
// never wait on each other's geometry fetches.
type MapHandler struct {
	NewRenderer RendererFactory
	Log         logrus.FieldLogger
}

// Render handles POST /api/map/render and responds with the drawn scene.
// Invalid coordinates return 400.
func (h *MapHandler) Render(c *gin.Context) {
	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "origin and destination with lat and lon are required")
		return
	}

	origin, err := req.Origin.Location()
	if err != nil {
		writeServiceError(c, h.Log, err)
		return
	}
	destination, err := req.Destination.Location()
	if err != nil {
		writeServiceError(c, h.Log, err)
		return
	}

	scene := mapsurface.NewScene()
	if err := h.NewRenderer(scene).Render(c.Request.Context(), origin, destination, req.RouteOptions()); err != nil {
		writeServiceError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, scene.Snapshot())
}
