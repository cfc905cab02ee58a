package handler

import (
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	commentrepo "github.com/Dishalex/PhotoShare/internal/modules/comment/repo"
	commentservice "github.com/Dishalex/PhotoShare/internal/modules/comment/service"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	imagerepo "github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
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
	testHandler = New(commentservice.New(appService, commentrepo.NewCommentRepository(gdb), imagerepo.NewImageRepository(gdb)))
	return gdb
}

func as(u model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httpx.CtxUserID, u.ID)
		c.Set(httpx.CtxRole, u.Role)
		c.Next()
	}
}
