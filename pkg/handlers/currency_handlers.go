package handlers

import (
	"net/http"

	"crmkit/pkg/models"
	"crmkit/pkg/response"

	"github.com/gin-gonic/gin"
)

// FormatCurrency renders a raw amount for display
// @Summary Format currency amount
// @Description Prefixes the value with the configured currency symbol
// @Tags Currency
// @Accept json
// @Produce json
// @Param value query string true "Raw amount, e.g. 12.50"
// @Success 200 {object} models.CurrencyFormatResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /currency/format [get]
func (h *HandlerService) FormatCurrency(c *gin.Context) {
	value, ok := c.GetQuery("value")
	if !ok {
		handleError(c, validateRequired("", "value"))
		return
	}

	response.WriteJSON(c, http.StatusOK, models.CurrencyFormatResponse{
		Value:   value,
		Display: h.state.FormatCurrency(value),
	})
}

// ParseCurrency strips the currency symbol from a displayed amount
// @Summary Parse currency display
// @Description Removes one leading currency symbol; a symbol elsewhere is kept
// @Tags Currency
// @Accept json
// @Produce json
// @Param display query string true "Displayed amount, e.g. $12.50"
// @Success 200 {object} models.CurrencyParseResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /currency/parse [get]
func (h *HandlerService) ParseCurrency(c *gin.Context) {
	display, ok := c.GetQuery("display")
	if !ok {
		handleError(c, validateRequired("", "display"))
		return
	}

	response.WriteJSON(c, http.StatusOK, models.CurrencyParseResponse{
		Display: display,
		Value:   h.state.ParseCurrency(display),
	})
}
