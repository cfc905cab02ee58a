package handler

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/modules/comment/dto"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateComment(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	comment, err := h.commentService.CreateComment(actor, req.ImageID, req.Comment)
	if err != nil {
		httpx.WriteServiceError(c, err, "create comment failed")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) UpdateComment(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	comment, updated, err := h.commentService.UpdateComment(actor, id, req.Comment)
	if err != nil {
		httpx.WriteServiceError(c, err, "update comment failed")
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found or permission denied"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.commentService.DeleteComment(actor, id); err != nil {
		httpx.WriteServiceError(c, err, "delete comment failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

func (h *Handler) ListImageComments(c *gin.Context) {
	imageID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.commentService.ListImageComments(imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "list comments failed")
		return
	}
	c.JSON(http.StatusOK, comments)
}
