package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bardleycoopster/todos/internal/repo"
	"github.com/bardleycoopster/todos/internal/service"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps the service error taxonomy onto HTTP statuses. Storage
// causes stay in the server log; callers get the generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrAlreadyShared):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repo.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
