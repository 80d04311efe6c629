// @title crmkit API
// @version 1.0.0
// @description Support links, currency display, country lookup and platform detection for CRM frontends.
// @BasePath /api/v1
package main

import (
	"fmt"
	"os"

	"crmkit/internal/state"
	"crmkit/pkg/config"
	"crmkit/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Loaded once per invocation by the root pre-run hook
	cfg      *config.Config
	appState *state.State
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "crmkit",
	Short: "Helpers for CRM frontends: support links, currency, countries, platform",
	Long: `crmkit derives support ticketing links, formats and parses currency
amounts, looks up countries by ISO 3166-1 alpha-2 code and detects Mac hosts.

Run "crmkit serve" to expose the same helpers over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadState()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./, ~/.crmkit, /etc/crmkit)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")

	currencyCmd.AddCommand(currencyFormatCmd)
	currencyCmd.AddCommand(currencyParseCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(supportURLCmd)
	rootCmd.AddCommand(currencyCmd)
	rootCmd.AddCommand(countryCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(platformCmd)
}

// loadState reads the configuration and builds the shared state
func loadState() error {
	var err error
	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if verbose {
		if err := logger.InitLogger(logger.Options{Development: true, Level: "debug"}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	appState, err = state.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to build state: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
