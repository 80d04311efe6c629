// Package state holds the read-only application state shared by the HTTP
// handlers and the CLI commands.
package state

import (
	"fmt"
	"time"

	"crmkit/pkg/config"
	"crmkit/pkg/country"
	"crmkit/pkg/platform"
	"crmkit/pkg/utils/currencyutils"
)

// State is built once from configuration and only read afterwards
type State struct {
	Countries      *country.Table
	CurrencySymbol string
	CurrencyCode   string
	UserAgentEnv   string
	PlatformEnv    string
	StartedAt      time.Time
}

// New builds the state described by cfg. A nil cfg uses the defaults.
func New(cfg *config.Config) (*State, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &State{
		Countries:      country.Default(),
		CurrencySymbol: currencyutils.DefaultSymbol,
		UserAgentEnv:   platform.DefaultUserAgentEnv,
		PlatformEnv:    platform.DefaultPlatformEnv,
		StartedAt:      time.Now(),
	}

	if cfg.Catalog != nil && cfg.Catalog.CountriesFile != "" {
		table, err := country.LoadFile(cfg.Catalog.CountriesFile)
		if err != nil {
			return nil, fmt.Errorf("load countries dataset: %w", err)
		}
		s.Countries = table
	}

	if cfg.Currency != nil {
		if cfg.Currency.Symbol != "" {
			s.CurrencySymbol = cfg.Currency.Symbol
		}
		if cfg.Currency.Code != "" {
			code, err := currencyutils.ValidateCode(cfg.Currency.Code)
			if err != nil {
				return nil, err
			}
			s.CurrencyCode = code
		}
	}

	if cfg.Platform != nil {
		if cfg.Platform.UserAgentEnv != "" {
			s.UserAgentEnv = cfg.Platform.UserAgentEnv
		}
		if cfg.Platform.PlatformEnv != "" {
			s.PlatformEnv = cfg.Platform.PlatformEnv
		}
	}

	return s, nil
}

// FormatCurrency renders value with the configured symbol
func (s *State) FormatCurrency(value string) string {
	return currencyutils.FormatWithSymbol(value, s.CurrencySymbol)
}

// ParseCurrency strips the configured symbol from display
func (s *State) ParseCurrency(display string) string {
	return currencyutils.ParseWithSymbol(display, s.CurrencySymbol)
}

// HostEnvironment returns the process environment using the configured
// variable names.
func (s *State) HostEnvironment() platform.Environment {
	return platform.NewHostEnvironment(s.UserAgentEnv, s.PlatformEnv)
}

// Uptime reports how long the state has existed
func (s *State) Uptime() time.Duration {
	return time.Since(s.StartedAt)
}
