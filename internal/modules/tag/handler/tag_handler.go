package handler

import (
	"net/http"
	"strconv"

	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/tag/dto"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTag(c *gin.Context) {
	var req moduledto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	tag, err := h.tagService.CreateTag(req.TagName)
	if err != nil {
		httpx.WriteServiceError(c, err, "create tag failed")
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) ListTags(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 500 {
		limit = 100
	}

	tags, err := h.tagService.ListTags(offset, limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "list tags failed")
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *Handler) GetTag(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	tag, err := h.tagService.GetTagByID(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "load tag failed")
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) GetTagByName(c *gin.Context) {
	tag, err := h.tagService.GetTagByName(c.Param("name"))
	if err != nil {
		httpx.WriteServiceError(c, err, "load tag failed")
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) RenameTag(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	tag, err := h.tagService.RenameTag(actor, id, req.TagName)
	if err != nil {
		httpx.WriteServiceError(c, err, "update tag failed")
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) DeleteTag(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.tagService.DeleteTagByID(actor, id); err != nil {
		httpx.WriteServiceError(c, err, "delete tag failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}

func (h *Handler) DeleteTagByName(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	if err := h.tagService.DeleteTagByName(actor, c.Param("name")); err != nil {
		httpx.WriteServiceError(c, err, "delete tag failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}
