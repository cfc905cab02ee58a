package service

import (
	"github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	settingStore repo.SettingStore
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Service {
	return &Service{
		AppService:   appService,
		settingStore: settingStore,
	}
}
