package tag

import (
	"github.com/Dishalex/PhotoShare/internal/modules/tag/handler"
	"github.com/Dishalex/PhotoShare/internal/modules/tag/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/tag/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, tagStore repo.TagStore) *Module {
	moduleService := service.New(appService, tagStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
