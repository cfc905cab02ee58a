package service

import (
	"context"
	"errors"
	"time"

	"github.com/Dishalex/PhotoShare/internal/consts"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/image/dto"
	"github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"gorm.io/gorm"
)

// AddTag links a tag to the owner's image. Adding a tag that is already linked succeeds
// without changes.
func (s *Service) AddTag(actor policy.Actor, imageID uint, name string) (string, error) {
	name = utils.NormalizeTagName(name)
	if !utils.ValidTagName(name) {
		return "", platformservice.NewValidationError("invalid tag name")
	}
	image, err := s.GetImageByID(imageID)
	if err != nil {
		return "", err
	}
	if !policy.Can(actor, policy.ImageTag, image.UserID) {
		return "", platformservice.NewForbiddenError(msgNotAllowed)
	}

	if _, err := s.imageStore.AttachTag(imageID, name, consts.MaxTagsPerImage); err != nil {
		switch {
		case errors.Is(err, repo.ErrTooManyTags):
			return "", platformservice.NewConflictError(msgOnlyFiveTags)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return "", platformservice.NewNotFoundError(msgImageNotFound)
		default:
			return "", platformservice.WrapInternalError("add tag failed", err)
		}
	}
	return name, nil
}

// CreateQR returns the QR code of an image, rendering and uploading it on first use only.
func (s *Service) CreateQR(ctx context.Context, actor policy.Actor, imageID uint) (*moduledto.ImageQRResponse, error) {
	image, err := s.GetImageByID(imageID)
	if err != nil {
		return nil, err
	}
	if image.QRURL != "" {
		return &moduledto.ImageQRResponse{ImageID: image.ID, QRCodeURL: image.QRURL}, nil
	}

	requester, err := s.userStore.FindByID(actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("user no longer exists")
		}
		return nil, platformservice.WrapInternalError("load user failed", err)
	}

	png, err := s.qr.Render(image.URL)
	if err != nil {
		return nil, platformservice.WrapInternalError("render qr code failed", err)
	}
	asset, err := s.host.Upload(ctx, png, imagehost.GeneratePublicID(publicIDFolder(), requester.Email, time.Now()))
	if err != nil {
		return nil, platformservice.NewUpstreamError("upload qr code failed", err)
	}

	stored, err := s.imageStore.SetQRURLIfEmpty(image.ID, asset.URL)
	if err != nil {
		s.deleteRemoteQuietly(ctx, asset.PublicID)
		return nil, platformservice.WrapInternalError("save qr code failed", err)
	}
	if !stored {
		// a concurrent request won; hand out its code and drop ours
		s.deleteRemoteQuietly(ctx, asset.PublicID)
		current, err := s.GetImageByID(image.ID)
		if err != nil {
			return nil, err
		}
		return &moduledto.ImageQRResponse{ImageID: current.ID, QRCodeURL: current.QRURL}, nil
	}
	return &moduledto.ImageQRResponse{ImageID: image.ID, QRCodeURL: asset.URL}, nil
}
