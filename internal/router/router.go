package router

import (
	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/middleware"
	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/modules"
	"github.com/Dishalex/PhotoShare/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

// guards bundles the middleware chains shared by route groups.
type guards struct {
	authenticated []gin.HandlerFunc
	admin         []gin.HandlerFunc
	authLimiter   gin.HandlerFunc
	upload        []gin.HandlerFunc
}

// with returns a fresh chain so shared guard slices are never appended in place.
func with(chain []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	r.GET("/", rt.modules.System.Handler.Root)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	authenticated := []gin.HandlerFunc{
		middleware.JWTAuth(rt.service),
		middleware.IdentityCheck(rt.service, rt.modules.User.Service),
	}
	g := guards{
		authenticated: authenticated,
		admin:         with(authenticated, middleware.RequireRoles(model.RoleAdmin)),
		// one limiter instance per bucket, shared by all routes of that bucket
		authLimiter: middleware.RateLimitMiddleware(rt.service, "auth", consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst),
		upload: []gin.HandlerFunc{
			middleware.UploadBodyLimitMiddleware(rt.service),
			middleware.RateLimitMiddleware(rt.service, "upload", consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst),
		},
	}

	registerSystemRoutes(api, rt.modules)
	registerAuthRoutes(api, g, rt.modules)
	registerUserRoutes(api, g, rt.modules)
	registerImageRoutes(api, g, rt.modules)
	registerCommentRoutes(api, g, rt.modules)
	registerRatingRoutes(api, g, rt.modules)
	registerTagRoutes(api, g, rt.modules)
	registerAdminRoutes(api, g, rt.modules)
}
