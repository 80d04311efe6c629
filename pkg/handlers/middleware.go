package handlers

import (
	"time"

	"crmkit/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getCurrentTimestamp returns the current UTC time
func getCurrentTimestamp() time.Time {
	return time.Now().UTC()
}

// requestLogger returns a logger carrying the request ID and the operation name
func requestLogger(c *gin.Context, operation string) *zap.Logger {
	return logger.FromContext(logger.WithOperation(c.Request.Context(), operation))
}
