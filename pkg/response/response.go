package response

import (
	"net/http"

	"crmkit/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "RequestID"

// Error response field names
const (
	FieldError     = "error"
	FieldMessage   = "message"
	FieldCode      = "code"
	FieldDetails   = "details"
	FieldRequestID = "request_id"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// WriteError writes an error response in JSON format and aborts the chain
func WriteError(c *gin.Context, statusCode int, message string, err error) {
	c.AbortWithStatusJSON(statusCode, ErrorBody(c, statusCode, message, err))

	if err != nil {
		logger.Warn("API error",
			zap.String("message", message),
			zap.Error(err),
			zap.Int("status_code", statusCode),
			zap.String("request_id", c.GetString(RequestIDKey)))
	}
}

// ErrorBody builds the error payload shared by handlers and middleware
func ErrorBody(c *gin.Context, statusCode int, message string, err error) gin.H {
	body := gin.H{
		FieldError:   true,
		FieldMessage: message,
		FieldCode:    statusCode,
	}
	if err != nil {
		body[FieldDetails] = err.Error()
	}
	if id := c.GetString(RequestIDKey); id != "" {
		body[FieldRequestID] = id
	}
	return body
}

// InternalError writes a generic 500 without leaking details
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody(c, http.StatusInternalServerError, "Internal Server Error", nil))
}
