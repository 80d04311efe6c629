package handlers

import (
	"fmt"
	"net/http"

	"crmkit/pkg/models"
	"crmkit/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetStatus returns the overall system status
// @Summary Get system status
// @Description Returns service name, version, uptime and the loaded reference data
// @Tags System Management
// @Accept json
// @Produce json
// @Success 200 {object} models.SystemStatus
// @Router /status [get]
func (h *HandlerService) GetStatus(c *gin.Context) {
	response.WriteJSON(c, http.StatusOK, models.SystemStatus{
		Service:        ServiceName,
		Version:        Version,
		Status:         "running",
		Timestamp:      getCurrentTimestamp(),
		UptimeSeconds:  int64(h.state.Uptime().Seconds()),
		CountryCount:   h.state.Countries.Len(),
		CurrencySymbol: h.state.CurrencySymbol,
		CurrencyCode:   h.state.CurrencyCode,
	})
}

// HealthCheck performs a comprehensive health check
// @Summary Perform health check
// @Description Checks that the country table and the currency settings are usable (Note: this endpoint is not under /api/v1 path)
// @Tags Health Check
// @Accept json
// @Produce json
// @Success 200 {object} models.HealthCheckResponse "Health check passed"
// @Failure 503 {object} models.HealthCheckResponse "Service unhealthy"
// @Router /health [get]
func (h *HandlerService) HealthCheck(c *gin.Context) {
	health := models.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: getCurrentTimestamp(),
		Checks: map[string]models.HealthCheck{
			"countries": h.checkCountriesHealth(),
			"currency":  h.checkCurrencyHealth(),
		},
	}

	for _, check := range health.Checks {
		if check.Status != "healthy" {
			health.Status = "unhealthy"
			response.WriteJSON(c, http.StatusServiceUnavailable, health)
			return
		}
	}

	response.WriteJSON(c, http.StatusOK, health)
}

// checkCountriesHealth checks the country table is loaded
func (h *HandlerService) checkCountriesHealth() models.HealthCheck {
	if h.state == nil || h.state.Countries == nil || h.state.Countries.Len() == 0 {
		return models.HealthCheck{Status: "unhealthy", Error: "country table is empty"}
	}
	return models.HealthCheck{
		Status:  "healthy",
		Details: fmt.Sprintf("%d countries loaded", h.state.Countries.Len()),
	}
}

// checkCurrencyHealth checks the configured symbol round-trips
func (h *HandlerService) checkCurrencyHealth() models.HealthCheck {
	if h.state == nil {
		return models.HealthCheck{Status: "unhealthy", Error: "state not initialized"}
	}
	const probe = "1.00"
	if got := h.state.ParseCurrency(h.state.FormatCurrency(probe)); got != probe {
		return models.HealthCheck{Status: "unhealthy", Error: "currency symbol does not round-trip"}
	}
	return models.HealthCheck{Status: "healthy", Details: "symbol " + h.state.CurrencySymbol}
}
