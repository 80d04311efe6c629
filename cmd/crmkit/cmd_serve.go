package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"crmkit/pkg/logger"
	"crmkit/pkg/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the helpers as a JSON HTTP API",
	Long: `Starts the HTTP server with the /api/v1 endpoints, /health, /metrics
and the Swagger UI. Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if !verbose {
		if err := logger.InitLogger(logger.Options{
			Development: cfg.IsDevelopment(),
			LogPath:     cfg.App.LogFile,
			Level:       cfg.App.LogLevel,
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	logger.Info("Starting crmkit",
		zap.String("env", cfg.App.Environment),
		zap.String("listen_addr", cfg.ListenAddr()),
		zap.Int("countries", appState.Countries.Len()))

	ctx, stop := signal.NotifyContext(serveContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.NewHTTPServer(cfg, appState).Run(ctx); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("Server stopped")
	return nil
}

// serveContext is used when the command runs without a parent context
func serveContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
