// Package handlers contains HTTP request handlers for the todo service.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
)

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error and responds with a
// caller-safe message.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, message)
}

// respondServiceError maps service sentinel errors to HTTP statuses.
// Unknown errors are logged and reported as internal.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrPasswordBreached):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBreachUnavailable):
		RespondError(c, http.StatusServiceUnavailable, service.ErrBreachUnavailable.Error())
	case errors.Is(err, service.ErrTodoNotFound):
		RespondError(c, http.StatusNotFound, service.ErrTodoNotFound.Error())
	default:
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
	}
}
