package router

import (
	"github.com/Dishalex/PhotoShare/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerImageRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	h := m.Image.Handler
	imageGroup := api.Group("/images")
	imageGroup.Use(g.authenticated...)

	imageGroup.POST("/upload", with(g.upload, h.UploadImage)...)
	imageGroup.GET("/search", h.SearchImages)
	imageGroup.GET("/users/:user_id", h.ListUserImages)
	imageGroup.GET("/:id", h.GetImage)
	imageGroup.PATCH("/:id/update", h.UpdateDescription)
	imageGroup.DELETE("/:id", h.DeleteImage)
	imageGroup.GET("/:id/comments", m.Comment.Handler.ListImageComments)
	imageGroup.PATCH("/add_tag", h.AddTag)
	imageGroup.POST("/create_qr", with(g.upload, h.CreateQR)...)
	imageGroup.POST("/change_size", with(g.upload, h.ChangeSize)...)
	imageGroup.POST("/fade_edges", with(g.upload, h.FadeEdges)...)
	imageGroup.POST("/black_white", with(g.upload, h.BlackWhite)...)
}

func registerCommentRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	h := m.Comment.Handler
	commentGroup := api.Group("/comments")
	commentGroup.Use(g.authenticated...)

	commentGroup.POST("/", h.CreateComment)
	commentGroup.PUT("/:id/", h.UpdateComment)
	commentGroup.DELETE("/:id/", h.DeleteComment)
}

func registerRatingRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	h := m.Rating.Handler
	ratingGroup := api.Group("/ratings")
	ratingGroup.Use(g.authenticated...)

	ratingGroup.GET("/me", h.ShowMyRatings)
	ratingGroup.GET("/images/:image_id", h.CalculateRating)
	ratingGroup.GET("/users/:user_id/images/:image_id", h.UserRateImage)
	ratingGroup.POST("/:image_id", h.CreateRate)
	ratingGroup.PUT("/:id", h.EditRate)
	ratingGroup.DELETE("/:id", h.DeleteRate)
}

func registerTagRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	h := m.Tag.Handler
	tagGroup := api.Group("/tags")
	tagGroup.Use(g.authenticated...)

	tagGroup.POST("", h.CreateTag)
	tagGroup.GET("", h.ListTags)
	tagGroup.GET("/name/:name", h.GetTagByName)
	tagGroup.DELETE("/name/:name", h.DeleteTagByName)
	tagGroup.GET("/:id", h.GetTag)
	tagGroup.PUT("/:id", h.RenameTag)
	tagGroup.DELETE("/:id", h.DeleteTag)
}
