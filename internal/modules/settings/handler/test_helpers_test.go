package handler

import (
	"testing"

	modulerepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	settingsservice "github.com/Dishalex/PhotoShare/internal/modules/settings/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore, nil, "")
	testHandler = New(settingsservice.New(testService, settingStore))
	testService.ClearCache()
	return gdb
}
