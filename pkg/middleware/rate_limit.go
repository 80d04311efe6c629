package middleware

import (
	"errors"
	"net/http"

	"crmkit/pkg/metrics"
	"crmkit/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimit rejects requests with 429 once the shared token bucket is
// empty. m may be nil.
func RateLimit(rps float64, burst int, m *metrics.Metrics) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			if m != nil {
				m.IncrementRateLimited()
			}
			c.Header("Retry-After", "1")
			response.WriteError(c, http.StatusTooManyRequests, "Too many requests", errRateLimited)
			return
		}
		c.Next()
	}
}
