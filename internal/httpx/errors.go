package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
	// Offending input field, for validation errors
	Field string `json:"field,omitempty"`
}

// StatusOf maps an error onto the HTTP status the portal answers with.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrNetwork), errors.Is(err, apperr.ErrServer):
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled):
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as HTTPError. Unexpected errors are logged and
// their text is not sent to the browser.
func WriteError(c *gin.Context, err error) {
	code := StatusOf(err)
	body := HTTPError{Error: apperr.Message(err)}
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		body.Field = ve.Field
	}
	if code >= 500 {
		slog.Error("request failed", "rid", GetRequestID(c), "path", c.Request.URL.Path, "error", err)
		if code == http.StatusInternalServerError {
			body.Error = "internal error"
		}
	}
	c.JSON(code, body)
}

// AbortError writes err and stops the handler chain.
func AbortError(c *gin.Context, err error) {
	WriteError(c, err)
	c.Abort()
}
