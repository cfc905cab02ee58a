package handler

import (
	"testing"

	authservice "github.com/Dishalex/PhotoShare/internal/modules/auth/service"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	userrepo "github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	userservice "github.com/Dishalex/PhotoShare/internal/modules/user/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testApp     *platformservice.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	testApp = platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	users := userservice.New(testApp, userrepo.NewUserRepository(gdb), testutils.NewFakeHost())
	testHandler = New(authservice.New(testApp, users))
	testApp.ClearCache()
	return gdb
}
