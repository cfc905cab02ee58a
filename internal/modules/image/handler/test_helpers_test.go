package handler

import (
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	imagerepo "github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	imageservice "github.com/Dishalex/PhotoShare/internal/modules/image/service"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	userrepo "github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testHandler *Handler
	testHost    *testutils.FakeHost
)

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	testHost = testutils.NewFakeHost()
	testHandler = New(imageservice.New(appService, userrepo.NewUserRepository(gdb), imagerepo.NewImageRepository(gdb), testHost, &testutils.StaticQR{}))
	appService.ClearCache()
	return gdb
}

func as(u model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httpx.CtxUserID, u.ID)
		c.Set(httpx.CtxRole, u.Role)
		c.Next()
	}
}
