package comment

import (
	"github.com/Dishalex/PhotoShare/internal/modules/comment/handler"
	"github.com/Dishalex/PhotoShare/internal/modules/comment/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/comment/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, commentStore repo.CommentStore, imageStore repo.ImageStore) *Module {
	moduleService := service.New(appService, commentStore, imageStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
