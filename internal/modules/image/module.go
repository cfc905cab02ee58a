package image

import (
	"github.com/Dishalex/PhotoShare/internal/modules/image/handler"
	"github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/image/service"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	"github.com/Dishalex/PhotoShare/internal/platform/qrcode"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	userStore repo.UserStore,
	imageStore repo.ImageStore,
	host imagehost.Host,
	qr qrcode.Renderer,
) *Module {
	moduleService := service.New(appService, userStore, imageStore, host, qr)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
