package handler

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/user/dto"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetSelfInfo returns the profile of the current user.
func (h *Handler) GetSelfInfo(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(actor.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateSelfProfile changes first name, last name or sex.
func (h *Handler) UpdateSelfProfile(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}

	var req moduledto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	profile, err := h.userService.UpdateProfile(actor.ID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "update failed")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateSelfAvatar uploads a new avatar image.
func (h *Handler) UpdateSelfAvatar(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please choose a file"})
		return
	}

	profile, err := h.userService.UpdateAvatar(c.Request.Context(), actor.ID, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "avatar upload failed, please try again later")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetPublicProfile shows another user's public profile.
func (h *Handler) GetPublicProfile(c *gin.Context) {
	profile, err := h.userService.GetPublicProfile(c.Param("username"))
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
