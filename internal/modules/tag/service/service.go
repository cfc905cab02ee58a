package service

import (
	"github.com/Dishalex/PhotoShare/internal/modules/tag/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	tagStore repo.TagStore
}

func New(appService *platformservice.AppService, tagStore repo.TagStore) *Service {
	return &Service{
		AppService: appService,
		tagStore:   tagStore,
	}
}
