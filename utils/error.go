package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceError is the error type returned by the service layer. Status is the
// HTTP status the handler should respond with.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewAuthError(msg string) error {
	return &ServiceError{Status: http.StatusUnauthorized, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &ServiceError{Status: http.StatusForbidden, Message: msg}
}

// NewValidationError covers malformed input, out-of-range values, invalid
// state transitions and duplicates.
func NewValidationError(msg string) error {
	return &ServiceError{Status: http.StatusBadRequest, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Status: http.StatusNotFound, Message: msg}
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RespondError maps a service error onto the wire. Unexpected errors are
// logged with full detail and surfaced as a generic 500.
func RespondError(c *gin.Context, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Status, gin.H{"error": svcErr.Message})
		return
	}
	GetLogger().Error("Unexpected error", zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
