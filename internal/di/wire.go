//go:build wireinject
// +build wireinject

package di

import (
	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/modules"
	commentrepo "github.com/Dishalex/PhotoShare/internal/modules/comment/repo"
	imagerepo "github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	ratingrepo "github.com/Dishalex/PhotoShare/internal/modules/rating/repo"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	systemrepo "github.com/Dishalex/PhotoShare/internal/modules/system/repo"
	tagrepo "github.com/Dishalex/PhotoShare/internal/modules/tag/repo"
	userrepo "github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	"github.com/Dishalex/PhotoShare/internal/router"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB, cfg config.Config) (*Application, error) {
	wire.Build(
		userrepo.NewUserRepository,
		imagerepo.NewImageRepository,
		tagrepo.NewTagRepository,
		commentrepo.NewCommentRepository,
		ratingrepo.NewRatingRepository,
		settingsrepo.NewSettingRepository,
		systemrepo.NewSystemRepository,
		provideRedis,
		provideAppService,
		provideImageHost,
		provideQRRenderer,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
