package service

import (
	"sync"

	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"

	"github.com/redis/go-redis/v9"
)

// AppService carries the process-wide collaborators every module shares: the cached
// runtime settings and the optional redis client.
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
	redis         *redis.Client
	redisPrefix   string
	revoked       sync.Map // jti -> expiry, used without redis
}

// NewAppService builds the shared service. rdb may be nil, in which case callers fall back
// to in-process state.
func NewAppService(settingStore settingsrepo.SettingStore, rdb *redis.Client, redisPrefix string) *AppService {
	return &AppService{settingStore: settingStore, redis: rdb, redisPrefix: redisPrefix}
}
