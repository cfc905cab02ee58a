package service

import (
	"testing"

	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	userrepo "github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *Service
	testHost    *testutils.FakeHost
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	testHost = testutils.NewFakeHost()
	testService = New(appService, userrepo.NewUserRepository(gdb), testHost)
	testService.ClearCache()
	return gdb
}
