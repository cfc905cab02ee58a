package handler

import (
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	modulerepo "github.com/Dishalex/PhotoShare/internal/modules/system/repo"
	systemservice "github.com/Dishalex/PhotoShare/internal/modules/system/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	testHandler = New(systemservice.New(appService, modulerepo.NewSystemRepository(gdb)))
	return gdb
}

func as(u model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httpx.CtxUserID, u.ID)
		c.Set(httpx.CtxRole, u.Role)
		c.Next()
	}
}
