package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"crmkit/pkg/logger"
	"crmkit/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Common error type definitions
var (
	// ErrInvalidParam indicates invalid parameter error
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrResourceNotFound indicates resource not found error
	ErrResourceNotFound = errors.New("resource not found")
)

// APIError represents a custom API error structure
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API Error (Code: %d, Message: %s): %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("API Error (Code: %d, Message: %s)", e.Code, e.Message)
}

// Unwrap supports error wrapping
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new API error
func NewAPIError(code int, message string, err error) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// handleError provides unified error handling
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		response.WriteError(c, apiErr.Code, apiErr.Message, apiErr.Err)
		return
	}

	switch {
	case errors.Is(err, ErrInvalidParam):
		response.WriteError(c, http.StatusBadRequest, "Invalid parameter", err)
	case errors.Is(err, ErrResourceNotFound):
		response.WriteError(c, http.StatusNotFound, "Resource not found", err)
	default:
		// Unknown error, log details and return generic 500 error
		logger.Error("Unexpected error occurred",
			zap.Error(err),
			zap.String("request_id", c.GetString(response.RequestIDKey)))
		response.InternalError(c)
	}
}

// validateRequired validates required parameters
func validateRequired(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidParam, fieldName)
	}
	return nil
}
