package handler

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetServerStats(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	stats, err := h.systemService.AdminGetServerStats(actor)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to collect statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
