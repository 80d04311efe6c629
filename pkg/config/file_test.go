package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// 测试默认配置
	cfg, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.Server == nil || cfg.App == nil || cfg.Currency == nil {
		t.Fatal("default sections should not be nil")
	}
	if cfg.Currency.Symbol != "$" {
		t.Errorf("Expected default symbol $, got %s", cfg.Currency.Symbol)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "test_config.yaml")

	originalConfig := &Config{
		Server: &ServerConfig{
			Address: "127.0.0.1",
			Port:    9001,
		},
		App: &AppConfig{
			LogLevel: "debug",
			LogFile:  "/tmp/test.log",
		},
		Currency: &CurrencyConfig{Symbol: "€", Code: "EUR"},
	}

	// 保存配置
	if err := SaveConfig(originalConfig, tempFile); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// 加载配置
	loadedConfig, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedConfig.Server.Port != originalConfig.Server.Port {
		t.Errorf("Expected port %d, got %d", originalConfig.Server.Port, loadedConfig.Server.Port)
	}
	if loadedConfig.App.LogLevel != originalConfig.App.LogLevel {
		t.Errorf("Expected log level %s, got %s", originalConfig.App.LogLevel, loadedConfig.App.LogLevel)
	}
	if loadedConfig.Currency.Symbol != "€" {
		t.Errorf("Expected symbol €, got %s", loadedConfig.Currency.Symbol)
	}
	// 缺失的配置段应使用默认值
	if loadedConfig.RateLimit == nil || loadedConfig.Platform == nil || loadedConfig.Catalog == nil {
		t.Error("missing sections should be filled with defaults")
	}
}

func TestSaveAndLoadJSONConfig(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "config.json")

	if err := SaveConfig(getDefaultConfig(), tempFile); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	cfg, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigInvalidFormat(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badYAML, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(badYAML); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}

	toml := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(toml, []byte("a = 1"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(toml); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestConfigWithEnvVars(t *testing.T) {
	t.Setenv("SERVER_PORT", "9002")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CURRENCY_SYMBOL", "£")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	tempFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tempFile, []byte("server:\n  port: 8000\n  address: localhost\napp:\n  log_level: info\ncurrency:\n  symbol: \"$\"\nrate_limit:\n  requests_per_second: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// 验证环境变量覆盖了文件中的值
	if cfg.Server.Port != 9002 {
		t.Errorf("Expected port 9002, got %d", cfg.Server.Port)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.App.LogLevel)
	}
	if cfg.Currency.Symbol != "£" {
		t.Errorf("Expected symbol £, got %s", cfg.Currency.Symbol)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Burst != 7 || cfg.RateLimit.RequestsPerSecond != 5 {
		t.Errorf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://admin.example.com" {
		t.Errorf("unexpected allowed origins: %v", cfg.Server.AllowedOrigins)
	}
	if cfg.ListenAddr() != "localhost:9002" {
		t.Errorf("Expected listen addr localhost:9002, got %s", cfg.ListenAddr())
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: ErrServerConfig},
		{name: "missing server", mutate: func(c *Config) { c.Server = nil }, wantErr: ErrMissingRequired},
		{name: "bad log level", mutate: func(c *Config) { c.App.LogLevel = "loud" }, wantErr: ErrAppConfig},
		{name: "missing dataset", mutate: func(c *Config) { c.Catalog.CountriesFile = "/nonexistent/countries.yaml" }, wantErr: ErrCatalogConfig},
		{name: "bad currency code", mutate: func(c *Config) { c.Currency.Code = "DOLLAR" }, wantErr: ErrCurrencyConfig},
		{name: "bad rate", mutate: func(c *Config) { c.RateLimit.Enabled = true; c.RateLimit.RequestsPerSecond = 0 }, wantErr: ErrRateLimitConfig},
		{name: "disabled rate limit ignores values", mutate: func(c *Config) { c.RateLimit.Enabled = false; c.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getDefaultConfig()
			tt.mutate(cfg)

			err := cfg.ValidateConfig()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateConfig() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigPartialSections(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 9100\ncurrency:\n  code: EUR\nrate_limit:\n  enabled: true\n"
	if err := os.WriteFile(tempFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Fatalf("partial config should be valid: %v", err)
	}

	defaults := getDefaultConfig()

	// 文件中给出的字段生效
	if cfg.Server.Port != 9100 {
		t.Errorf("Expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Currency.Code != "EUR" {
		t.Errorf("Expected code EUR, got %s", cfg.Currency.Code)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("Expected rate limit enabled")
	}

	// 缺省字段保留默认值
	if cfg.Currency.Symbol != defaults.Currency.Symbol {
		t.Errorf("Expected symbol %q, got %q", defaults.Currency.Symbol, cfg.Currency.Symbol)
	}
	if !cfg.Server.EnableSwagger {
		t.Error("Expected swagger to stay enabled")
	}
	if cfg.Server.Address != defaults.Server.Address {
		t.Errorf("Expected address %s, got %s", defaults.Server.Address, cfg.Server.Address)
	}
	if cfg.Server.GracefulShutdownTimeout != defaults.Server.GracefulShutdownTimeout {
		t.Errorf("Expected shutdown timeout %d, got %d", defaults.Server.GracefulShutdownTimeout, cfg.Server.GracefulShutdownTimeout)
	}
	if cfg.RateLimit.RequestsPerSecond != defaults.RateLimit.RequestsPerSecond || cfg.RateLimit.Burst != defaults.RateLimit.Burst {
		t.Errorf("Expected default rate limit values, got %+v", cfg.RateLimit)
	}
}

func TestLoadConfigExplicitFalse(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(tempFile, []byte(`{"server": {"enable_swagger": false}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Server.EnableSwagger {
		t.Error("Expected explicit false to disable swagger")
	}
	if cfg.Server.Port != getDefaultConfig().Server.Port {
		t.Errorf("Expected default port, got %d", cfg.Server.Port)
	}
}
