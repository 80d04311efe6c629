package config

import (
	"fmt"
	"os"
	"strings"

	"crmkit/pkg/utils/currencyutils"
)

// ValidateConfig 验证完整的配置
func (c *Config) ValidateConfig() error {
	if err := c.validateServerConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerConfig, err)
	}

	if err := c.validateAppConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrAppConfig, err)
	}

	if err := c.validateCatalogConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrCatalogConfig, err)
	}

	if err := c.validateCurrencyConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrCurrencyConfig, err)
	}

	if err := c.validateRateLimitConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrRateLimitConfig, err)
	}

	return nil
}

// validateServerConfig 验证Server配置
func (c *Config) validateServerConfig() error {
	if c.Server == nil {
		return fmt.Errorf("%w: server", ErrMissingRequired)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port必须在1-65535范围内", ErrInvalidValue)
	}

	return nil
}

// validateAppConfig 验证App配置
func (c *Config) validateAppConfig() error {
	if c.App == nil {
		return fmt.Errorf("%w: app", ErrMissingRequired)
	}

	switch strings.ToLower(c.App.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level必须是debug/info/warn/error之一", ErrInvalidValue)
	}

	return nil
}

// validateCatalogConfig 验证国家数据集配置
func (c *Config) validateCatalogConfig() error {
	if c.Catalog == nil || c.Catalog.CountriesFile == "" {
		return nil // 使用内置数据集
	}

	if _, err := os.Stat(c.Catalog.CountriesFile); err != nil {
		return fmt.Errorf("%w: countries_file不可读: %v", ErrInvalidValue, err)
	}

	return nil
}

// validateCurrencyConfig 验证货币配置
func (c *Config) validateCurrencyConfig() error {
	if c.Currency == nil {
		return fmt.Errorf("%w: currency", ErrMissingRequired)
	}

	if c.Currency.Code != "" {
		if _, err := currencyutils.ValidateCode(c.Currency.Code); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
	}

	return nil
}

// validateRateLimitConfig 验证限流配置
func (c *Config) validateRateLimitConfig() error {
	if c.RateLimit == nil || !c.RateLimit.Enabled {
		return nil
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests_per_second必须大于0", ErrInvalidValue)
	}

	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("%w: burst必须大于0", ErrInvalidValue)
	}

	return nil
}
