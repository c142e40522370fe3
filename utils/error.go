package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error categories. Every error returned by a service carries exactly one of
// these, so handlers can map to an HTTP status in a single place.
const (
	CategoryValidation = "validation"
	CategoryNotFound   = "not_found"
	CategoryForbidden  = "forbidden"
	CategoryConflict   = "conflict"
	CategoryInternal   = "internal"
)

// ServiceError is a machine-distinguishable error with a human-readable message.
type ServiceError struct {
	Category string
	Message  string
}

func (e *ServiceError) Error() string {
	return e.Category + ": " + e.Message
}

func ValidationError(msg string) error {
	return &ServiceError{Category: CategoryValidation, Message: msg}
}

func NotFoundError(msg string) error {
	return &ServiceError{Category: CategoryNotFound, Message: msg}
}

func ForbiddenError(msg string) error {
	return &ServiceError{Category: CategoryForbidden, Message: msg}
}

func ConflictError(msg string) error {
	return &ServiceError{Category: CategoryConflict, Message: msg}
}

// ErrorCategory extracts the category of err, or CategoryInternal for plain errors.
func ErrorCategory(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category
	}
	return CategoryInternal
}

func statusForCategory(category string) int {
	switch category {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
	Details  string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONServiceError maps a service error to its HTTP status. Plain errors are
// logged and surfaced as a generic internal failure.
func JSONServiceError(c *gin.Context, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(statusForCategory(svcErr.Category), ErrorResponse{
			Message:  svcErr.Message,
			Category: svcErr.Category,
		})
		return
	}
	GetLogger().Error("Unhandled service error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message:  "Internal Server Error",
		Category: CategoryInternal,
	})
}
