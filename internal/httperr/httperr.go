package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the body of every failed response.
type HTTPError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Abort writes the error and stops the middleware chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps err onto the HTTP surface. Business errors keep their code,
// anything else is logged and hidden behind a 500.
func Respond(c *gin.Context, log *slog.Logger, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status, message := Status(be.Code)
		Write(c, status, be.Code, message)
		return
	}

	log.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	Internal(c, "internal_error", "Internal server error")
}
