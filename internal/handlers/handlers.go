package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skyport/internal/apperrors"
	"skyport/internal/config"
	"skyport/internal/service"
	"skyport/internal/storage"
)

type Handlers struct {
	services *service.Services
	images   *storage.ImageStore
	cfg      *config.Config
}

func NewHandlers(services *service.Services, images *storage.ImageStore, cfg *config.Config) *Handlers {
	return &Handlers{
		services: services,
		images:   images,
		cfg:      cfg,
	}
}

// respondError maps domain errors onto HTTP status codes. Anything
// unclassified is a 500 and gets logged with the request path.
func respondError(c *gin.Context, err error) {
	var status int
	body := gin.H{"error": err.Error()}

	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
		var errs apperrors.ValidationErrors
		if errors.As(err, &errs) {
			body = gin.H{"error": "validation failed", "fields": errs}
		}
	case apperrors.IsConflict(err):
		status = http.StatusConflict
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrSearchUnavailable):
		status = http.StatusServiceUnavailable
	default:
		slog.Error("Request handling failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
		status = http.StatusInternalServerError
		body = gin.H{"error": "Internal server error"}
	}

	c.JSON(status, body)
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
