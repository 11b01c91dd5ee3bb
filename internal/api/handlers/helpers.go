package handlers

import (
	"errors"
	"net/http"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/platform/obs"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const genericFailure = "failed to fetch routes, please try again"

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// writeServiceError maps service errors to responses. Invalid coordinates are
// the caller's fault; anything else is logged and reported generically.
func writeServiceError(c *gin.Context, log logrus.FieldLogger, err error) {
	if errors.Is(err, domain.ErrInvalidCoordinates) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	log.WithError(err).WithFields(logrus.Fields{
		"req_id": obs.RequestID(c.Request.Context()),
		"path":   c.FullPath(),
	}).Error("request failed")
	writeError(c, http.StatusInternalServerError, genericFailure)
}
