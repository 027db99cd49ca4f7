package utils

import (
	"net/http"

	"careindex/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

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

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONValidationError sends a 400 response listing every invalid field.
func JSONValidationError(c *gin.Context, message string, fields []models.FieldError) {
	logger := GetLogger()
	logger.Warn(message, zap.Int("invalidFields", len(fields)))
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Errors: fields})
}
