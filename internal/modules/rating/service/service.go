package service

import (
	"github.com/Dishalex/PhotoShare/internal/modules/rating/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	ratingStore repo.RatingStore
	imageStore  repo.ImageStore
}

func New(appService *platformservice.AppService, ratingStore repo.RatingStore, imageStore repo.ImageStore) *Service {
	return &Service{
		AppService:  appService,
		ratingStore: ratingStore,
		imageStore:  imageStore,
	}
}
