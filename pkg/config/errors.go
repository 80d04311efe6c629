package config

import "errors"

// Configuration-related error definitions using sentinel errors pattern
var (
	// Generic errors
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidFormat  = errors.New("invalid configuration file format")

	// Configuration validation errors
	ErrMissingRequired = errors.New("missing required configuration item")
	ErrInvalidValue    = errors.New("invalid configuration value")

	// Section errors
	ErrServerConfig    = errors.New("server configuration error")
	ErrAppConfig       = errors.New("app configuration error")
	ErrCatalogConfig   = errors.New("catalog configuration error")
	ErrCurrencyConfig  = errors.New("currency configuration error")
	ErrRateLimitConfig = errors.New("rate limit configuration error")
)
