package router

import (
	"github.com/Dishalex/PhotoShare/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerSystemRoutes(api *gin.RouterGroup, m *modules.AppModules) {
	api.GET("/healthchecker", m.System.Handler.Healthchecker)
}
