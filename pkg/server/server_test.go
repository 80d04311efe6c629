package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crmkit/internal/state"
	"crmkit/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.App.Environment = "development"
	cfg.Server.Address = "127.0.0.1"
	cfg.Server.Port = 0
	if mutate != nil {
		mutate(cfg)
	}

	st, err := state.New(cfg)
	require.NoError(t, err)
	return NewHTTPServer(cfg, st)
}

func serve(s *HTTPServer, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		target string
		want   int
	}{
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/swagger/index.html", http.StatusOK},
		{"/api/v1/status", http.StatusOK},
		{"/api/v1/support-url?host=acme.example.com", http.StatusOK},
		{"/api/v1/support-url", http.StatusBadRequest},
		{"/api/v1/currency/format?value=1", http.StatusOK},
		{"/api/v1/currency/parse?display=%241", http.StatusOK},
		{"/api/v1/countries", http.StatusOK},
		{"/api/v1/countries/gb", http.StatusOK},
		{"/api/v1/countries/zz", http.StatusNotFound},
		{"/api/v1/platform", http.StatusOK},
		{"/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(s, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestMetricsExposeRequests(t *testing.T) {
	s := newTestServer(t, nil)

	serve(s, http.MethodGet, "/api/v1/countries/de", nil)
	rec := serve(s, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `crmkit_http_requests_total{method="GET",route="/api/v1/countries/:code",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "crmkit_countries_loaded 249")
}

func TestSwaggerDisabled(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Server.EnableSwagger = false })
	assert.Equal(t, http.StatusNotFound, serve(s, http.MethodGet, "/swagger/index.html", nil).Code)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Server.AllowedOrigins = []string{"https://app.example.com"}
	})

	rec := serve(s, http.MethodGet, "/api/v1/status", map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(s, http.MethodGet, "/api/v1/status", map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRateLimitEnabled(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.RateLimit.Enabled = true
		c.RateLimit.RequestsPerSecond = 0.001
		c.RateLimit.Burst = 1
	})

	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/v1/status", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(s, http.MethodGet, "/api/v1/status", nil).Code)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Server.GracefulShutdownTimeout = 1 })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
