package service

import (
	"github.com/Dishalex/PhotoShare/internal/modules/auth/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
	}
}
