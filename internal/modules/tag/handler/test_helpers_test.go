package handler

import (
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	tagrepo "github.com/Dishalex/PhotoShare/internal/modules/tag/repo"
	tagservice "github.com/Dishalex/PhotoShare/internal/modules/tag/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	testHandler = New(tagservice.New(appService, tagrepo.NewTagRepository(gdb)))
	return gdb
}

func as(u model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httpx.CtxUserID, u.ID)
		c.Set(httpx.CtxRole, u.Role)
		c.Next()
	}
}
