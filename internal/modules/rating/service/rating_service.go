package service

import (
	"errors"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/db"
	"github.com/Dishalex/PhotoShare/internal/metrics"
	"github.com/Dishalex/PhotoShare/internal/model"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/rating/dto"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"

	"gorm.io/gorm"
)

const (
	msgImageNotFound  = "image not found"
	msgRatingNotFound = "rating not found"
	msgOwnPost        = "it is not possible to rate own post"
	msgVoteTwice      = "it is not possible to vote twice"
)

func validateRate(rate int) error {
	if rate < consts.MinRate || rate > consts.MaxRate {
		return platformservice.NewValidationError("rate must be between 1 and 5")
	}
	return nil
}

func (s *Service) loadImage(imageID uint) (*model.Image, error) {
	image, err := s.imageStore.FindByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.WrapInternalError("load image failed", err)
	}
	return image, nil
}

// CreateRate records one rating per user and image. Owners cannot rate their own images.
func (s *Service) CreateRate(actor policy.Actor, imageID uint, rate int) (*model.Rating, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	image, err := s.loadImage(imageID)
	if err != nil {
		return nil, err
	}
	if image.UserID == actor.ID {
		return nil, platformservice.NewConflictError(msgOwnPost)
	}
	if _, err := s.ratingStore.FindByUserAndImage(actor.ID, imageID); err == nil {
		return nil, platformservice.NewConflictError(msgVoteTwice)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformservice.WrapInternalError("load rating failed", err)
	}

	rating := &model.Rating{ImageID: imageID, UserID: actor.ID, Rate: rate}
	if err := s.ratingStore.Create(rating); err != nil {
		// A concurrent submission can pass the lookup above; the unique index decides.
		if db.IsDuplicateKey(err) {
			return nil, platformservice.NewConflictError(msgVoteTwice)
		}
		return nil, platformservice.WrapInternalError("create rating failed", err)
	}
	metrics.RatingsSubmitted.Inc()
	return rating, nil
}

// EditRate changes a rating. ok is false when the actor is neither the author nor a
// moderator or admin.
func (s *Service) EditRate(actor policy.Actor, id uint, rate int) (*model.Rating, bool, error) {
	if err := validateRate(rate); err != nil {
		return nil, false, err
	}
	rating, err := s.findRating(id)
	if err != nil {
		return nil, false, err
	}
	if !policy.Can(actor, policy.RatingUpdate, rating.UserID) {
		return nil, false, nil
	}
	if err := s.ratingStore.UpdateRate(id, rate); err != nil {
		return nil, false, mapRatingError(err, "update rating failed")
	}
	rating.Rate = rate
	return rating, true, nil
}

// DeleteRate removes a rating. ok is false when the actor may not touch it.
func (s *Service) DeleteRate(actor policy.Actor, id uint) (*model.Rating, bool, error) {
	rating, err := s.findRating(id)
	if err != nil {
		return nil, false, err
	}
	if !policy.Can(actor, policy.RatingDelete, rating.UserID) {
		return nil, false, nil
	}
	if err := s.ratingStore.Delete(id); err != nil {
		return nil, false, mapRatingError(err, "delete rating failed")
	}
	return rating, true, nil
}

func (s *Service) CalculateRating(imageID uint) (*moduledto.AverageRatingResponse, error) {
	image, err := s.loadImage(imageID)
	if err != nil {
		return nil, err
	}
	avg, err := s.ratingStore.AverageForImage(imageID)
	if err != nil {
		return nil, platformservice.WrapInternalError("calculate rating failed", err)
	}
	return &moduledto.AverageRatingResponse{AverageRating: avg, ImageURL: image.URL}, nil
}

func (s *Service) ShowMyRatings(actor policy.Actor) ([]model.Rating, error) {
	ratings, err := s.ratingStore.ListByUserID(actor.ID)
	if err != nil {
		return nil, platformservice.WrapInternalError("list ratings failed", err)
	}
	if ratings == nil {
		ratings = []model.Rating{}
	}
	return ratings, nil
}

func (s *Service) UserRateImage(userID, imageID uint) (*model.Rating, error) {
	rating, err := s.ratingStore.FindByUserAndImage(userID, imageID)
	if err != nil {
		return nil, mapRatingError(err, "load rating failed")
	}
	return rating, nil
}

func (s *Service) findRating(id uint) (*model.Rating, error) {
	rating, err := s.ratingStore.FindByID(id)
	if err != nil {
		return nil, mapRatingError(err, "load rating failed")
	}
	return rating, nil
}

func mapRatingError(err error, fallback string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError(msgRatingNotFound)
	}
	return platformservice.WrapInternalError(fallback, err)
}
