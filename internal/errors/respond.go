package errors

import (
	"errors"
	"net/http"

	"codeberg.org/codecopilot/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// writes a classified error as JSON, logging server-side failures first
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Wrap(KindUnknown, "an error occurred", err)
	}

	status := StatusFor(e.Kind)

	response := ErrorResponse{
		Error:   string(e.Kind),
		Message: e.Message,
		Details: responseDetails(e),
	}

	if status >= http.StatusInternalServerError {
		args := []any{
			"kind", e.Kind,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		}

		if e.Err != nil {
			args = append(args, "category", classifyError(e.Err).category)
		}

		if e.Details != nil {
			args = append(args, "details", e.Details)
		}

		logger.FromContext(c.Request.Context()).Error(e.Message, append(args, "error", e.Err)...)
	}

	c.JSON(status, response)
}

// returns a 400 invalid request error for malformed bodies
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   string(KindInvalidRequest),
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// provider diagnostics always pass through; everything else is sanitized
func responseDetails(e *Error) any {
	if e.Details != nil {
		return e.Details
	}

	if e.Err == nil {
		return nil
	}

	return sanitizeError(e.Err)
}
