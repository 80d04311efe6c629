package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "crmkit/docs" // swagger docs
	"crmkit/internal/state"
	"crmkit/pkg/config"
	"crmkit/pkg/handlers"
	"crmkit/pkg/logger"
	"crmkit/pkg/metrics"
	"crmkit/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server constants
const (
	DefaultIdleTimeout = 120 * time.Second
	APIBasePath        = "/api/v1"
)

// HTTPServer represents the HTTP server component
type HTTPServer struct {
	server     *http.Server
	router     *gin.Engine
	config     *config.Config
	metrics    *metrics.Metrics
	handlerSvc *handlers.HandlerService
}

// NewHTTPServer creates a new HTTP server instance
func NewHTTPServer(cfg *config.Config, st *state.State) *HTTPServer {
	logger.Info("Initializing HTTP server",
		zap.String("address", cfg.Server.Address),
		zap.Int("port", cfg.Server.Port))

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	s := &HTTPServer{
		router:     gin.New(),
		config:     cfg,
		metrics:    m,
		handlerSvc: handlers.NewHandlerService(st, m),
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  DefaultIdleTimeout,
	}

	logger.Info("HTTP server initialized", zap.String("listen_addr", s.server.Addr))
	return s
}

// Handler exposes the router, mainly for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all HTTP routes
func (s *HTTPServer) setupRoutes() {
	s.addMiddleware()

	s.router.GET("/health", s.handlerSvc.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	if s.config.Server.EnableSwagger {
		s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	s.setupAPIRoutes()

	logger.Info("HTTP routes configured", zap.Int("routes", len(s.router.Routes())))
}

// addMiddleware adds all middleware to the router
func (s *HTTPServer) addMiddleware() {
	s.router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.GinZapLogger(logger.With(zap.String("component", "http"))),
		middleware.Metrics(s.metrics),
		cors.New(s.corsConfig()),
	)

	if rl := s.config.RateLimit; rl != nil && rl.Enabled {
		s.router.Use(middleware.RateLimit(rl.RequestsPerSecond, rl.Burst, s.metrics))
	}

	s.router.Use(middleware.ErrorHandler())
}

// corsConfig builds the CORS policy from the allowed origins
func (s *HTTPServer) corsConfig() cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.RequestIDHeader, "Sec-CH-UA-Platform")
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	origins := s.config.Server.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}

// setupAPIRoutes configures API v1 routes
func (s *HTTPServer) setupAPIRoutes() {
	api := s.router.Group(APIBasePath)
	{
		api.GET("/status", s.handlerSvc.GetStatus)
		api.GET("/support-url", s.handlerSvc.GetSupportURL)

		currency := api.Group("/currency")
		currency.GET("/format", s.handlerSvc.FormatCurrency)
		currency.GET("/parse", s.handlerSvc.ParseCurrency)

		api.GET("/countries", s.handlerSvc.ListCountries)
		api.GET("/countries/:code", s.handlerSvc.GetCountry)

		api.GET("/platform", s.handlerSvc.DetectPlatform)
	}
}

// Start starts the HTTP server and blocks until it stops
func (s *HTTPServer) Start() error {
	logger.Info("Starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	return nil
}

// Run starts the server and shuts it down when ctx is cancelled
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout())
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}
