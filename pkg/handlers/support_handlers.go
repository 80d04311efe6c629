package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"crmkit/pkg/models"
	"crmkit/pkg/response"
	"crmkit/pkg/utils/urlutils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetSupportURL derives the support ticketing link for an API host
// @Summary Derive support URL
// @Description Builds the ticketing URL from the first label of the API host, optionally deep-linking a ticket
// @Tags Support
// @Accept json
// @Produce json
// @Param host query string true "API host, e.g. acme.example.com"
// @Param ticket_id query int false "Ticket ID to link"
// @Success 200 {object} models.SupportURLResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /support-url [get]
func (h *HandlerService) GetSupportURL(c *gin.Context) {
	host := c.Query("host")
	if err := validateRequired(host, "host"); err != nil {
		handleError(c, err)
		return
	}

	resp := models.SupportURLResponse{Host: host}

	if raw, ok := c.GetQuery("ticket_id"); ok {
		ticketID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handleError(c, NewAPIError(http.StatusBadRequest, "ticket_id must be an integer",
				fmt.Errorf("%w: ticket_id %q", ErrInvalidParam, raw)))
			return
		}
		resp.TicketID = &ticketID
		resp.URL = urlutils.TicketURL(host, ticketID)
	} else {
		resp.URL = urlutils.DeriveSupportURL(host)
	}

	requestLogger(c, "support_url").Debug("Derived support URL",
		zap.String("host", host),
		zap.String("url", resp.URL))

	response.WriteJSON(c, http.StatusOK, resp)
}
