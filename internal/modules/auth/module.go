package auth

import (
	"github.com/Dishalex/PhotoShare/internal/modules/auth/handler"
	"github.com/Dishalex/PhotoShare/internal/modules/auth/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/auth/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Module {
	moduleService := service.New(appService, userStore)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
