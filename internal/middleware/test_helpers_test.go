package middleware

import (
	"testing"

	"github.com/Dishalex/PhotoShare/internal/config"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/testutils"

	"gorm.io/gorm"
)

var testService *service.AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore, nil, "")
	testService.ClearCache()
	return gdb
}

func resetRoleCache() {
	roleCache.Range(func(key, value any) bool {
		roleCache.Delete(key)
		return true
	})
}

func withJWTSecret(t *testing.T) {
	t.Helper()
	prev := config.Get()
	cfg := prev
	cfg.JWT.Secret = "middleware-test-secret"
	config.Set(cfg)
	t.Cleanup(func() { config.Set(prev) })
}
