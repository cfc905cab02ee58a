package router

import (
	"github.com/Dishalex/PhotoShare/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	h := m.Auth.Handler
	authGroup := api.Group("/auth")

	authGroup.POST("/signup", g.authLimiter, h.Signup)
	authGroup.POST("/login", g.authLimiter, h.Login)
	authGroup.POST("/refresh_token", g.authLimiter, h.RefreshToken)
	authGroup.POST("/logout", with(g.authenticated, h.Logout)...)
}
