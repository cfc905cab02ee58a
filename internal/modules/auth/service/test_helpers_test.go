package service

import (
	"testing"

	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	userrepo "github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	userservice "github.com/Dishalex/PhotoShare/internal/modules/user/service"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb), nil, "")
	users := userservice.New(appService, userrepo.NewUserRepository(gdb), testutils.NewFakeHost())
	testService = New(appService, users)
	testService.ClearCache()
	return gdb
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
