package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/logging"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/user/dto"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"

	"gorm.io/gorm"
)

// GetProfile returns the full profile of the current user.
func (s *Service) GetProfile(userID uint) (*moduledto.UserProfileResponse, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("user not found")
		}
		return nil, platformservice.WrapInternalError("load user failed", err)
	}
	profile := moduledto.ToProfileResponse(user)
	return &profile, nil
}

// GetPublicProfile looks a user up by username and counts their images.
func (s *Service) GetPublicProfile(username string) (*moduledto.PublicProfileResponse, error) {
	user, err := s.userStore.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("user not found")
		}
		return nil, platformservice.WrapInternalError("load user failed", err)
	}
	count, err := s.userStore.CountImages(user.ID)
	if err != nil {
		return nil, platformservice.WrapInternalError("count images failed", err)
	}
	return &moduledto.PublicProfileResponse{
		ID:         user.ID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Avatar:     user.Avatar,
		ImageCount: count,
		CreatedAt:  user.CreatedAt,
	}, nil
}

// UpdateProfile changes the optional personal fields. Nil fields are left alone.
func (s *Service) UpdateProfile(userID uint, req moduledto.UpdateProfileRequest) (*moduledto.UserProfileResponse, error) {
	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Sex != nil {
		updates["sex"] = strings.TrimSpace(*req.Sex)
	}
	if len(updates) == 0 {
		return nil, platformservice.NewValidationError("nothing to update")
	}

	if err := s.userStore.UpdateProfile(userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("user not found")
		}
		return nil, platformservice.WrapInternalError("update profile failed", err)
	}
	return s.GetProfile(userID)
}

// UpdateAvatar uploads a new avatar to the image host and stores its URL.
func (s *Service) UpdateAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (*moduledto.UserProfileResponse, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("user not found")
		}
		return nil, platformservice.WrapInternalError("load user failed", err)
	}

	data, _, err := s.ReadImageUpload(file)
	if err != nil {
		return nil, err
	}

	publicID := imagehost.GeneratePublicID(avatarFolder(), user.Email, time.Now())
	asset, err := s.host.Upload(ctx, data, publicID)
	if err != nil {
		return nil, platformservice.NewUpstreamError("avatar upload failed", err)
	}

	if err := s.userStore.UpdateAvatar(user.ID, asset.URL); err != nil {
		if delErr := s.host.Delete(ctx, asset.PublicID); delErr != nil {
			logging.Warn().Err(delErr).Str("public_id", asset.PublicID).Msg("orphaned avatar left on image host")
		}
		return nil, platformservice.WrapInternalError("update avatar failed", err)
	}
	user.Avatar = asset.URL
	profile := moduledto.ToProfileResponse(user)
	return &profile, nil
}

func avatarFolder() string {
	folder := config.Get().ImageHost.Folder
	if folder == "" {
		folder = consts.PublicIDFolder
	}
	return folder + "/avatars"
}

