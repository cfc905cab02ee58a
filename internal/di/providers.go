package di

import (
	"context"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	"github.com/Dishalex/PhotoShare/internal/platform/qrcode"
	"github.com/Dishalex/PhotoShare/internal/platform/service"

	"github.com/redis/go-redis/v9"
)

func provideRedis(cfg config.Config) *redis.Client {
	return service.NewRedisClient(cfg.Redis)
}

func provideAppService(settingStore settingsrepo.SettingStore, rdb *redis.Client, cfg config.Config) *service.AppService {
	return service.NewAppService(settingStore, rdb, cfg.Redis.Prefix)
}

func provideImageHost(cfg config.Config) (imagehost.Host, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return imagehost.New(ctx, cfg.ImageHost)
}

func provideQRRenderer() qrcode.Renderer {
	return qrcode.NewPNGRenderer()
}
