package user

import (
	"github.com/Dishalex/PhotoShare/internal/modules/user/handler"
	"github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/user/service"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, userStore repo.UserStore, host imagehost.Host) *service.Service {
	return service.New(appService, userStore, host)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
