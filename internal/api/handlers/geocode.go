package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"travel-compare-service/internal/api/dto"
	"travel-compare-service/internal/ports"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	defaultGeocodeLimit = 5
	maxGeocodeLimit     = 20
)

type GeocodeHandler struct {
	Geocoder ports.Geocoder
	Log      logrus.FieldLogger
}

// Autocomplete handles GET /api/geocode?text=&limit=.
func (h *GeocodeHandler) Autocomplete(c *gin.Context) {
	text := strings.TrimSpace(c.Query("text"))
	if text == "" {
		writeError(c, http.StatusBadRequest, "text is required")
		return
	}

	limit := defaultGeocodeLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxGeocodeLimit {
			writeError(c, http.StatusBadRequest, "limit must be between 1 and 20")
			return
		}
		limit = n
	}

	locs, err := h.Geocoder.Autocomplete(c.Request.Context(), text, limit)
	if err != nil {
		h.Log.WithError(err).WithField("text", text).Warn("geocode autocomplete failed")
		writeError(c, http.StatusBadGateway, "geocoding failed, please try again")
		return
	}

	c.JSON(http.StatusOK, dto.NewGeocodeResponse(locs))
}
