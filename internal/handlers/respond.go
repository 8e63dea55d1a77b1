package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erickazee/jobtrack/internal/apperrors"
)

// respondError maps the service error taxonomy onto HTTP statuses. The
// underlying message is surfaced to the user; nothing here is fatal.
func respondError(c *gin.Context, err error) {
	var authErr *apperrors.AuthError
	var notFoundErr *apperrors.NotFoundError
	var tailoringErr *apperrors.TailoringError

	// NotFound is checked before Tailoring: a tailoring failure caused by a
	// missing prerequisite (wrapped NotFound) answers 404, an upstream
	// generation failure answers 502.
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &tailoringErr):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// HealthCheck is the unauthenticated liveness endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
