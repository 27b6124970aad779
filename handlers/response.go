package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"orderalone/logger"
	"orderalone/middleware"
	"orderalone/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidLimit = errors.New("invalid limit")

// handleError writes the status that matches a service error. Anything it
// does not recognise is logged and reported as 500.
func handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidMenu),
		errors.Is(err, services.ErrOwnershipMismatch),
		errors.Is(err, services.ErrPasswordTooLong),
		errors.Is(err, services.ErrNoFieldsToUpdate),
		errors.Is(err, errInvalidLimit):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrGameForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyScored),
		errors.Is(err, services.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, services.ErrStorageDisabled):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.Log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return userID, true
}

func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID"})
		return 0, false
	}
	return uint(id), true
}

// parseLimit reads ?limit=, falling back to def when absent.
func parseLimit(c *gin.Context, def, max int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > max {
		return 0, fmt.Errorf("%w: must be between 1 and %d", errInvalidLimit, max)
	}
	return limit, nil
}
