package handler

import (
	"net/http"
	"strconv"

	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/image/dto"
	imageservice "github.com/Dishalex/PhotoShare/internal/modules/image/service"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) UploadImage(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please choose a file"})
		return
	}

	resp, err := h.imageService.UploadImage(c.Request.Context(), actor, imageservice.UploadInput{
		File:        file,
		Description: c.PostForm("description"),
		Tags:        c.PostForm("tags"),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "upload failed, please try again later")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) SearchImages(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	resp, err := h.imageService.SearchImages(c.Query("keyword"), c.Query("tag"), offset, limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "search failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetImage(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.imageService.GetImage(actor, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to load image")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListUserImages(c *gin.Context) {
	userID, ok := httpx.ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	images, err := h.imageService.ListUserImages(userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to list images")
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

func (h *Handler) UpdateDescription(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req moduledto.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	resp, err := h.imageService.UpdateDescription(actor, id, req.Description)
	if err != nil {
		httpx.WriteServiceError(c, err, "update failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteImage(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.imageService.DeleteImage(c.Request.Context(), actor, id); err != nil {
		httpx.WriteServiceError(c, err, "delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "image has been deleted"})
}

func (h *Handler) AddTag(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}

	var req moduledto.AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	name, err := h.imageService.AddTag(actor, req.ImageID, req.TagName)
	if err != nil {
		httpx.WriteServiceError(c, err, "add tag failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag successfully added", "tag": name})
}

func (h *Handler) CreateQR(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}

	var req moduledto.ImageIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	resp, err := h.imageService.CreateQR(c.Request.Context(), actor, req.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "qr code creation failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}
