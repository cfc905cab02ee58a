package handler

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/image/dto"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ChangeSize(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}

	var req moduledto.ChangeSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	resp, err := h.imageService.ChangeSize(c.Request.Context(), actor, req.ID, req.Width)
	if err != nil {
		httpx.WriteServiceError(c, err, "transform failed")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) FadeEdges(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}

	var req moduledto.ImageIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	resp, err := h.imageService.FadeEdges(c.Request.Context(), actor, req.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "transform failed")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) BlackWhite(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}

	var req moduledto.ImageIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	resp, err := h.imageService.BlackWhite(c.Request.Context(), actor, req.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "transform failed")
		return
	}
	c.JSON(http.StatusCreated, resp)
}
