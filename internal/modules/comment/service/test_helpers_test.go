package service

import (
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"
	commentrepo "github.com/Dishalex/PhotoShare/internal/modules/comment/repo"
	imagerepo "github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	testService = New(appService, commentrepo.NewCommentRepository(gdb), imagerepo.NewImageRepository(gdb))
	return gdb
}

func actorOf(u model.User) policy.Actor {
	return policy.Actor{ID: u.ID, Role: u.Role}
}

func assertCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("expected service error %s, got %v", code, err)
	}
	if serviceErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, serviceErr.Code, serviceErr.Message)
	}
}
