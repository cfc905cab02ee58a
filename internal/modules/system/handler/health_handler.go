package handler

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.systemService.GetString(consts.ConfigSiteName) + " API"})
}

func (h *Handler) Healthchecker(c *gin.Context) {
	if err := h.systemService.CheckHealth(c.Request.Context()); err != nil {
		httpx.WriteServiceError(c, err, "error connecting to the database")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to PhotoShare!"})
}
