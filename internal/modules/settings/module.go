package settings

import (
	"github.com/Dishalex/PhotoShare/internal/modules/settings/handler"
	"github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/settings/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Module {
	moduleService := service.New(appService, settingStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
