package handler

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/middleware"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/user/dto"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminUpdateRole(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req moduledto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	profile, err := h.userService.AdminSetRole(actor, id, req.Role)
	if err != nil {
		httpx.WriteServiceError(c, err, "update failed")
		return
	}
	middleware.ClearIdentityCache(h.userService.AppService, id)
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) AdminDeleteUser(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.AdminDeleteUser(c.Request.Context(), actor, id); err != nil {
		httpx.WriteServiceError(c, err, "delete failed")
		return
	}
	middleware.ClearIdentityCache(h.userService.AppService, id)
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
