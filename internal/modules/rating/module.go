package rating

import (
	"github.com/Dishalex/PhotoShare/internal/modules/rating/handler"
	"github.com/Dishalex/PhotoShare/internal/modules/rating/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/rating/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, ratingStore repo.RatingStore, imageStore repo.ImageStore) *Module {
	moduleService := service.New(appService, ratingStore, imageStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
