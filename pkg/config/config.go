package config

// Config 主配置结构体
type Config struct {
	Server    *ServerConfig    `json:"server" yaml:"server"`
	App       *AppConfig       `json:"app" yaml:"app"`
	Catalog   *CatalogConfig   `json:"catalog" yaml:"catalog"`
	Currency  *CurrencyConfig  `json:"currency" yaml:"currency"`
	Platform  *PlatformConfig  `json:"platform" yaml:"platform"`
	RateLimit *RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
}

// getDefaultConfig 获取默认配置，所有配置项都使用各自的默认值
func getDefaultConfig() *Config {
	return &Config{
		Server:    NewServerConfig(),
		App:       NewAppConfig(),
		Catalog:   NewCatalogConfig(),
		Currency:  NewCurrencyConfig(),
		Platform:  NewPlatformConfig(),
		RateLimit: NewRateLimitConfig(),
	}
}

// Default 返回带环境变量覆盖的默认配置
func Default() *Config {
	return getDefaultConfig()
}

// IsDevelopment 判断是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.App != nil && (c.App.Environment == "development" || c.App.Environment == "dev")
}

// ListenAddr 返回 HTTP 监听地址
func (c *Config) ListenAddr() string {
	if c.Server == nil {
		return NewServerConfig().ListenAddr()
	}
	return c.Server.ListenAddr()
}
