package system

import (
	"github.com/Dishalex/PhotoShare/internal/modules/system/handler"
	"github.com/Dishalex/PhotoShare/internal/modules/system/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/system/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, systemStore repo.SystemStore) *Module {
	moduleService := service.New(appService, systemStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
