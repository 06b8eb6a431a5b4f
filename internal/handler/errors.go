package handler

import (
	"errors"
	"net/http"

	"gamereviews/backend/internal/logging"
	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Store failures are logged and
// reported with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrPlayTimeTooLow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrReviewsDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathID reads a document id path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !models.IsValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return "", false
	}
	return id, true
}
