package modules

import (
	"github.com/Dishalex/PhotoShare/internal/modules/auth"
	"github.com/Dishalex/PhotoShare/internal/modules/comment"
	commentrepo "github.com/Dishalex/PhotoShare/internal/modules/comment/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/image"
	imagerepo "github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/rating"
	ratingrepo "github.com/Dishalex/PhotoShare/internal/modules/rating/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/settings"
	settingsrepo "github.com/Dishalex/PhotoShare/internal/modules/settings/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/system"
	systemrepo "github.com/Dishalex/PhotoShare/internal/modules/system/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/tag"
	tagrepo "github.com/Dishalex/PhotoShare/internal/modules/tag/repo"
	"github.com/Dishalex/PhotoShare/internal/modules/user"
	userrepo "github.com/Dishalex/PhotoShare/internal/modules/user/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	"github.com/Dishalex/PhotoShare/internal/platform/qrcode"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type AppModules struct {
	Auth     *auth.Module
	User     *user.Module
	Image    *image.Module
	Tag      *tag.Module
	Comment  *comment.Module
	Rating   *rating.Module
	Settings *settings.Module
	System   *system.Module
}

func New(
	appService *platformservice.AppService,
	userStore userrepo.UserStore,
	imageStore imagerepo.ImageStore,
	tagStore tagrepo.TagStore,
	commentStore commentrepo.CommentStore,
	ratingStore ratingrepo.RatingStore,
	settingStore settingsrepo.SettingStore,
	systemStore systemrepo.SystemStore,
	host imagehost.Host,
	qr qrcode.Renderer,
) *AppModules {
	userService := user.NewService(appService, userStore, host)

	return &AppModules{
		Auth:     auth.New(appService, userService),
		User:     user.New(userService),
		Image:    image.New(appService, userService, imageStore, host, qr),
		Tag:      tag.New(appService, tagStore),
		Comment:  comment.New(appService, commentStore, imageStore),
		Rating:   rating.New(appService, ratingStore, imageStore),
		Settings: settings.New(appService, settingStore),
		System:   system.New(appService, systemStore),
	}
}
