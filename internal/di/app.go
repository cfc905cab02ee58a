package di

import (
	"github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/router"
)

type Application struct {
	Router  *router.Router
	Service *service.AppService
}

func NewApplication(r *router.Router, s *service.AppService) *Application {
	return &Application{
		Router:  r,
		Service: s,
	}
}
