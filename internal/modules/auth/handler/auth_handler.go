package handler

import (
	"net/http"
	"time"

	"github.com/Dishalex/PhotoShare/internal/middleware"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/auth/dto"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Signup(c *gin.Context) {
	var req moduledto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	user, err := h.authService.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "registration failed, please try again later")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"avatar":   user.Avatar,
			"role":     user.Role,
		},
		"detail": "user successfully created",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	tokens, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "login failed, please try again later")
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var req moduledto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	tokens, err := h.authService.RefreshTokens(req.RefreshToken)
	if err != nil {
		httpx.WriteServiceError(c, err, "refresh failed, please try again later")
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) Logout(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	jti := c.GetString(middleware.CtxTokenID)
	expiresAt := time.Now().Add(time.Hour)
	if v, exists := c.Get(middleware.CtxTokenExpiry); exists {
		if t, ok := v.(time.Time); ok {
			expiresAt = t
		}
	}

	if err := h.authService.Logout(c.Request.Context(), actor.ID, jti, expiresAt); err != nil {
		httpx.WriteServiceError(c, err, "logout failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
