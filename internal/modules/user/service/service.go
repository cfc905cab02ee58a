package service

import (
	"github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	host      imagehost.Host
}

func New(appService *platformservice.AppService, userStore repo.UserStore, host imagehost.Host) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		host:       host,
	}
}
