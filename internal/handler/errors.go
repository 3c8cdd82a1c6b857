package handler

import (
	"errors"
	"net/http"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/auth"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/lifecycle"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/service"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/validation"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP taxonomy. Persistence
// faults become an opaque 500; storage internals are never exposed to the
// caller.
func respondError(c *gin.Context, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest, "Validation failed", validationErr.Violations))
		return
	}

	var transitionErr *lifecycle.ErrIllegalTransition
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, transitionErr.Error()))
		return
	}

	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authentication required"))
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid email or password"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Insufficient role"))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, "Conflict"))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Not found"))
	default:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal server error"))
	}
}
