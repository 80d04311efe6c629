package handlers

import (
	"net/http"

	"crmkit/pkg/models"
	"crmkit/pkg/response"
	"crmkit/pkg/platform"

	"github.com/gin-gonic/gin"
)

// DetectPlatform reports whether the calling client runs on a Mac
// @Summary Detect client platform
// @Description Uses the User-Agent header, falling back to the Sec-CH-UA-Platform client hint
// @Tags Platform
// @Accept json
// @Produce json
// @Success 200 {object} models.PlatformResponse
// @Router /platform [get]
func (h *HandlerService) DetectPlatform(c *gin.Context) {
	env := platform.RequestEnvironment(c.Request)

	response.WriteJSON(c, http.StatusOK, models.PlatformResponse{
		IsMac:     platform.IsMac(env),
		UserAgent: env.UserAgentValue,
		Platform:  env.PlatformValue,
	})
}
