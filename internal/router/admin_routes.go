package router

import (
	"github.com/Dishalex/PhotoShare/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(g.admin...)

	adminGroup.GET("/stats", m.System.Handler.GetServerStats)

	adminGroup.GET("/settings", m.Settings.Handler.GetSettings)
	adminGroup.PATCH("/settings", m.Settings.Handler.UpdateSettings)

	adminGroup.PATCH("/users/:id/role", m.User.Handler.AdminUpdateRole)
	adminGroup.DELETE("/users/:id", m.User.Handler.AdminDeleteUser)
}
