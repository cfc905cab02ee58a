package service

import (
	"github.com/Dishalex/PhotoShare/internal/modules/system/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	systemStore repo.SystemStore
}

func New(appService *platformservice.AppService, systemStore repo.SystemStore) *Service {
	return &Service{
		AppService:  appService,
		systemStore: systemStore,
	}
}
