package service

import (
	"testing"

	modulerepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore, nil, "")
	testService = New(appService, settingStore)
	testService.ClearCache()
	return gdb
}
