package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"crmkit/pkg/country"
	"crmkit/pkg/models"
	"crmkit/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListCountries returns every country sorted by name
// @Summary List countries
// @Description Returns all countries of the active table sorted by display name
// @Tags Countries
// @Accept json
// @Produce json
// @Success 200 {object} models.CountryListResponse
// @Router /countries [get]
func (h *HandlerService) ListCountries(c *gin.Context) {
	countries := h.state.Countries.Countries()

	resp := models.CountryListResponse{
		Countries: make([]models.CountryResponse, 0, len(countries)),
		Total:     len(countries),
	}
	for _, ct := range countries {
		resp.Countries = append(resp.Countries, models.CountryResponse{
			Alpha2: ct.Alpha2,
			Name:   ct.Name,
		})
	}

	response.WriteJSON(c, http.StatusOK, resp)
}

// GetCountry looks up one country by alpha-2 code
// @Summary Get country
// @Description Looks up a country by ISO 3166-1 alpha-2 code, case-insensitive
// @Tags Countries
// @Accept json
// @Produce json
// @Param code path string true "Alpha-2 code, e.g. de"
// @Success 200 {object} models.CountryResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /countries/{code} [get]
func (h *HandlerService) GetCountry(c *gin.Context) {
	code := c.Param("code")

	name, ok := h.state.Countries.Name(code)
	if h.metrics != nil {
		h.metrics.RecordCountryLookup(ok)
	}
	if !ok {
		handleError(c, NewAPIError(http.StatusNotFound, "Country not found",
			fmt.Errorf("%w: country %q", ErrResourceNotFound, code)))
		return
	}

	resp := models.CountryResponse{
		Alpha2: strings.ToUpper(code),
		Name:   name,
	}
	if cur, ok := country.CurrencyFor(code); ok {
		resp.Currency = cur
	}

	response.WriteJSON(c, http.StatusOK, resp)
}
