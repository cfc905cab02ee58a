package service

import (
	"testing"

	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

var testService *AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	testService = NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	testService.ClearCache()
	return gdb
}
