package config

import (
	"fmt"
	"time"
)

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Address                 string   `json:"address" yaml:"address"`
	Port                    int      `json:"port" yaml:"port"`
	ReadTimeout             int      `json:"read_timeout" yaml:"read_timeout"`                           // seconds
	WriteTimeout            int      `json:"write_timeout" yaml:"write_timeout"`                         // seconds
	GracefulShutdownTimeout int      `json:"graceful_shutdown_timeout" yaml:"graceful_shutdown_timeout"` // seconds
	AllowedOrigins          []string `json:"allowed_origins" yaml:"allowed_origins"`
	EnableSwagger           bool     `json:"enable_swagger" yaml:"enable_swagger"`
}

// AppConfig 应用配置
type AppConfig struct {
	LogLevel    string `json:"log_level" yaml:"log_level"`
	LogFile     string `json:"log_file" yaml:"log_file"`
	Environment string `json:"environment" yaml:"environment"`
}

// CatalogConfig 国家数据集配置，CountriesFile 为空时使用内置数据集
type CatalogConfig struct {
	CountriesFile string `json:"countries_file" yaml:"countries_file"`
}

// CurrencyConfig 货币显示配置
type CurrencyConfig struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Code   string `json:"code" yaml:"code"`
}

// PlatformConfig 平台检测使用的环境变量名
type PlatformConfig struct {
	UserAgentEnv string `json:"user_agent_env" yaml:"user_agent_env"`
	PlatformEnv  string `json:"platform_env" yaml:"platform_env"`
}

// RateLimitConfig API 限流配置
type RateLimitConfig struct {
	Enabled           bool    `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// NewServerConfig 创建服务配置，默认值可被环境变量覆盖
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:                 getEnv("SERVER_ADDRESS", "0.0.0.0"),
		Port:                    getEnvInt("SERVER_PORT", 8080),
		ReadTimeout:             30,
		WriteTimeout:            30,
		GracefulShutdownTimeout: 15,
		AllowedOrigins:          []string{"*"},
		EnableSwagger:           true,
	}
}

// NewAppConfig 创建应用配置
func NewAppConfig() *AppConfig {
	return &AppConfig{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", "./logs/crmkit.log"),
		Environment: getEnv("APP_ENV", "production"),
	}
}

// NewCatalogConfig 创建国家数据集配置
func NewCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		CountriesFile: getEnv("CATALOG_COUNTRIES_FILE", ""),
	}
}

// NewCurrencyConfig 创建货币配置
func NewCurrencyConfig() *CurrencyConfig {
	return &CurrencyConfig{
		Symbol: getEnv("CURRENCY_SYMBOL", "$"),
		Code:   getEnv("CURRENCY_CODE", "USD"),
	}
}

// NewPlatformConfig 创建平台检测配置
func NewPlatformConfig() *PlatformConfig {
	return &PlatformConfig{
		UserAgentEnv: getEnv("PLATFORM_USER_AGENT_ENV", "CRMKIT_USER_AGENT"),
		PlatformEnv:  getEnv("PLATFORM_ENV", "CRMKIT_PLATFORM"),
	}
}

// NewRateLimitConfig 创建限流配置
func NewRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:           getEnvBool("RATE_LIMIT_ENABLED", false),
		RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 50),
		Burst:             getEnvInt("RATE_LIMIT_BURST", 100),
	}
}

// ListenAddr 返回 host:port 形式的监听地址
func (s *ServerConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

// ShutdownTimeout 返回优雅关闭超时时间
func (s *ServerConfig) ShutdownTimeout() time.Duration {
	return secondsOr(s.GracefulShutdownTimeout, 15)
}

// ReadTimeoutDuration 返回读超时
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return secondsOr(s.ReadTimeout, 30)
}

// WriteTimeoutDuration 返回写超时
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return secondsOr(s.WriteTimeout, 30)
}

func secondsOr(seconds, fallback int) time.Duration {
	if seconds <= 0 {
		seconds = fallback
	}
	return time.Duration(seconds) * time.Second
}
