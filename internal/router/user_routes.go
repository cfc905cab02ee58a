package router

import (
	"github.com/Dishalex/PhotoShare/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	h := m.User.Handler
	userGroup := api.Group("/users")
	userGroup.Use(g.authenticated...)

	userGroup.GET("/me", h.GetSelfInfo)
	userGroup.PATCH("/me", h.UpdateSelfProfile)
	userGroup.PATCH("/me/avatar", with(g.upload, h.UpdateSelfAvatar)...)
	userGroup.GET("/:username", h.GetPublicProfile)
}
