package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig 从指定路径加载配置文件
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 如果配置文件不存在，返回默认配置
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	// 在默认配置上解码，文件中缺省的字段保留默认值
	config := getDefaultConfig()
	ext := filepath.Ext(configPath)

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	mergeEnvVars(config)
	return config, nil
}

// SaveConfig 保存配置到指定路径
func SaveConfig(config *Config, configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 确保目录存在
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("config serialization failed: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultConfigPath 获取默认配置文件路径
func getDefaultConfigPath() string {
	// 优先级：当前目录 > 用户配置目录 > 系统配置目录
	paths := []string{
		"./config.yaml",
		"./config.json",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".crmkit", "config.yaml"),
			filepath.Join(homeDir, ".crmkit", "config.json"),
		)
	}

	paths = append(paths,
		"/etc/crmkit/config.yaml",
		"/etc/crmkit/config.json",
	)

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "./config.yaml"
}

// mergeEnvVars 将环境变量合并到配置中，显式置空(null)的配置段使用默认值
func mergeEnvVars(config *Config) {
	mergeServerEnvVars(config)
	mergeAppEnvVars(config)
	mergeCatalogEnvVars(config)
	mergeCurrencyEnvVars(config)
	mergePlatformEnvVars(config)
	mergeRateLimitEnvVars(config)
}

// mergeServerEnvVars 合并Server环境变量
func mergeServerEnvVars(config *Config) {
	if config.Server == nil {
		config.Server = NewServerConfig()
		return
	}

	if port := getEnvInt("SERVER_PORT", 0); port != 0 {
		config.Server.Port = port
	}
	if address := os.Getenv("SERVER_ADDRESS"); address != "" {
		config.Server.Address = address
	}
	if origins := os.Getenv("SERVER_ALLOWED_ORIGINS"); origins != "" {
		config.Server.AllowedOrigins = parseStringList(origins)
	}
}

// mergeAppEnvVars 合并App环境变量
func mergeAppEnvVars(config *Config) {
	if config.App == nil {
		config.App = NewAppConfig()
		return
	}

	envMappings := map[string]*string{
		"LOG_LEVEL": &config.App.LogLevel,
		"LOG_FILE":  &config.App.LogFile,
		"APP_ENV":   &config.App.Environment,
	}
	for envKey, field := range envMappings {
		if value := os.Getenv(envKey); value != "" {
			*field = value
		}
	}
}

// mergeCatalogEnvVars 合并国家数据集环境变量
func mergeCatalogEnvVars(config *Config) {
	if config.Catalog == nil {
		config.Catalog = NewCatalogConfig()
		return
	}

	if file := os.Getenv("CATALOG_COUNTRIES_FILE"); file != "" {
		config.Catalog.CountriesFile = file
	}
}

// mergeCurrencyEnvVars 合并货币环境变量
func mergeCurrencyEnvVars(config *Config) {
	if config.Currency == nil {
		config.Currency = NewCurrencyConfig()
		return
	}

	if symbol := os.Getenv("CURRENCY_SYMBOL"); symbol != "" {
		config.Currency.Symbol = symbol
	}
	if code := os.Getenv("CURRENCY_CODE"); code != "" {
		config.Currency.Code = code
	}
}

// mergePlatformEnvVars 合并平台检测环境变量
func mergePlatformEnvVars(config *Config) {
	if config.Platform == nil {
		config.Platform = NewPlatformConfig()
		return
	}

	if name := os.Getenv("PLATFORM_USER_AGENT_ENV"); name != "" {
		config.Platform.UserAgentEnv = name
	}
	if name := os.Getenv("PLATFORM_ENV"); name != "" {
		config.Platform.PlatformEnv = name
	}
}

// mergeRateLimitEnvVars 合并限流环境变量
func mergeRateLimitEnvVars(config *Config) {
	if config.RateLimit == nil {
		config.RateLimit = NewRateLimitConfig()
		return
	}

	if enabled := os.Getenv("RATE_LIMIT_ENABLED"); enabled != "" {
		config.RateLimit.Enabled = enabled == "true" || enabled == "1"
	}
	if rps := getEnvFloat("RATE_LIMIT_RPS", 0); rps != 0 {
		config.RateLimit.RequestsPerSecond = rps
	}
	if burst := getEnvInt("RATE_LIMIT_BURST", 0); burst != 0 {
		config.RateLimit.Burst = burst
	}
}
