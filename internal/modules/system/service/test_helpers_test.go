package service

import (
	"testing"

	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	modulerepo "github.com/Dishalex/PhotoShare/internal/modules/system/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	testService = New(appService, modulerepo.NewSystemRepository(gdb))
	return gdb
}
