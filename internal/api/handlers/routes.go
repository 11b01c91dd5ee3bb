package handlers

import (
	"context"
	"net/http"
	"travel-compare-service/internal/api/dto"
	"travel-compare-service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouteSearcher interface {
	Search(ctx context.Context, origin, destination domain.Location) ([]domain.RouteOption, error)
}

type RouteHandler struct {
	Searcher RouteSearcher
	Log      logrus.FieldLogger
}

// Search handles POST /api/routes/search. An empty route list is a normal
// 200 response.
func (h *RouteHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
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

	routes, err := h.Searcher.Search(c.Request.Context(), origin, destination)
	if err != nil {
		writeServiceError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchResponse(routes))
}
