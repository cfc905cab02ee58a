package service

import (
	"github.com/Dishalex/PhotoShare/internal/modules/comment/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	commentStore repo.CommentStore
	imageStore   repo.ImageStore
}

func New(appService *platformservice.AppService, commentStore repo.CommentStore, imageStore repo.ImageStore) *Service {
	return &Service{
		AppService:   appService,
		commentStore: commentStore,
		imageStore:   imageStore,
	}
}
