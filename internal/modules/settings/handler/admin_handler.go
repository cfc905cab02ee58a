package handler

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.AdminListSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to load settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.settingsService.AdminUpdateSettings(reqs); err != nil {
		httpx.WriteServiceError(c, err, "failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "settings updated",
		"count":   len(reqs),
	})
}
