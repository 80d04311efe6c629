package models

import "time"

// SystemStatus represents the system status response
type SystemStatus struct {
	Service        string    `json:"service" example:"crmkit"`
	Version        string    `json:"version" example:"1.0.0"`
	Status         string    `json:"status" example:"running"`
	Timestamp      time.Time `json:"timestamp" example:"2025-09-11T08:13:24Z"`
	UptimeSeconds  int64     `json:"uptime_seconds" example:"3600"`
	CountryCount   int       `json:"country_count" example:"249"`
	CurrencySymbol string    `json:"currency_symbol" example:"$"`
	CurrencyCode   string    `json:"currency_code,omitempty" example:"USD"`
}

// HealthCheckResponse represents the health check response
type HealthCheckResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2025-09-11T08:13:24Z"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// HealthCheck is the result of one component check
type HealthCheck struct {
	Status  string `json:"status" example:"healthy"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty" example:"249 countries loaded"`
}

// SupportURLResponse represents a derived support link
type SupportURLResponse struct {
	Host     string `json:"host" example:"acme.example.com"`
	TicketID *int64 `json:"ticket_id,omitempty" example:"42"`
	URL      string `json:"url" example:"https://acme.zendesk.com/agent/tickets"`
}

// CurrencyFormatResponse represents a formatted amount
type CurrencyFormatResponse struct {
	Value   string `json:"value" example:"12.50"`
	Display string `json:"display" example:"$12.50"`
}

// CurrencyParseResponse represents a parsed amount
type CurrencyParseResponse struct {
	Display string `json:"display" example:"$12.50"`
	Value   string `json:"value" example:"12.50"`
}

// CountryResponse represents one country
type CountryResponse struct {
	Alpha2   string `json:"alpha2" example:"DE"`
	Name     string `json:"name" example:"Germany"`
	Currency string `json:"currency,omitempty" example:"EUR"`
}

// CountryListResponse represents the country list
type CountryListResponse struct {
	Countries []CountryResponse `json:"countries"`
	Total     int               `json:"total" example:"249"`
}

// PlatformResponse represents the detected client platform
type PlatformResponse struct {
	IsMac     bool    `json:"is_mac" example:"true"`
	UserAgent *string `json:"user_agent" example:"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0)"`
	Platform  *string `json:"platform" example:"macOS"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     bool   `json:"error" example:"true"`
	Message   string `json:"message" example:"Invalid parameter"`
	Code      int    `json:"code" example:"400"`
	Details   string `json:"details,omitempty" example:"invalid parameter: host is required"`
	RequestID string `json:"request_id,omitempty" example:"2f1c0c2e-8a4e-4b7e-9f61-2a0f3d0f7c11"`
}
