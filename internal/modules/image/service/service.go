package service

import (
	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	"github.com/Dishalex/PhotoShare/internal/platform/qrcode"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	userStore  repo.UserStore
	imageStore repo.ImageStore
	host       imagehost.Host
	qr         qrcode.Renderer
}

func New(
	appService *platformservice.AppService,
	userStore repo.UserStore,
	imageStore repo.ImageStore,
	host imagehost.Host,
	qr qrcode.Renderer,
) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		imageStore: imageStore,
		host:       host,
		qr:         qr,
	}
}

func publicIDFolder() string {
	if folder := config.Get().ImageHost.Folder; folder != "" {
		return folder
	}
	return consts.PublicIDFolder
}
