package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/metrics"
	"github.com/Dishalex/PhotoShare/internal/model"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/image/dto"
	"github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"gorm.io/gorm"
)

const (
	msgImageNotFound = "image not found"
	msgNotAllowed    = "operation not permitted"
	msgOnlyFiveTags  = "only five tags per image are allowed"
)

// UploadInput carries the multipart form of an upload.
type UploadInput struct {
	File        *multipart.FileHeader
	Description string
	Tags        string // comma or space separated
}

// AddImage persists a row for an asset that already lives on the image host.
func (s *Service) AddImage(ownerID uint, url, publicID, description string) (*model.Image, error) {
	image := &model.Image{
		UserID:      ownerID,
		URL:         url,
		PublicID:    publicID,
		Description: description,
	}
	if err := s.imageStore.Create(image); err != nil {
		return nil, platformservice.WrapInternalError("save image failed", err)
	}
	return image, nil
}

// UploadImage validates the file and tags, pushes the bytes to the image host and stores
// the row with its tags. Tag limits are checked before anything is uploaded.
func (s *Service) UploadImage(ctx context.Context, actor policy.Actor, in UploadInput) (*moduledto.ImageAddResponse, error) {
	description, err := normalizeDescription(in.Description)
	if err != nil {
		return nil, err
	}
	tags, err := parseTags(in.Tags)
	if err != nil {
		return nil, err
	}

	data, _, err := s.ReadImageUpload(in.File)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.FindByID(actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("user no longer exists")
		}
		return nil, platformservice.WrapInternalError("load user failed", err)
	}

	blurHash, err := imagehost.ComputeBlurHash(data)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("blurhash skipped")
	}

	publicID := imagehost.GeneratePublicID(publicIDFolder(), user.Email, time.Now())
	asset, err := s.host.Upload(ctx, data, publicID)
	if err != nil {
		return nil, platformservice.NewUpstreamError("upload to image host failed", err)
	}

	image := &model.Image{
		UserID:      user.ID,
		URL:         asset.URL,
		PublicID:    asset.PublicID,
		Description: description,
		BlurHash:    blurHash,
	}
	if err := s.imageStore.CreateWithTags(image, tags, consts.MaxTagsPerImage); err != nil {
		s.deleteRemoteQuietly(ctx, asset.PublicID)
		if errors.Is(err, repo.ErrTooManyTags) {
			return nil, platformservice.NewConflictError(msgOnlyFiveTags)
		}
		return nil, platformservice.WrapInternalError("save image failed", err)
	}
	metrics.ImagesUploaded.Inc()

	return &moduledto.ImageAddResponse{Image: toImageModel(image), Detail: "image has been added"}, nil
}

// GetImage returns an image with its tags to its owner or an admin.
func (s *Service) GetImage(actor policy.Actor, id uint) (*moduledto.ImageDetailResponse, error) {
	image, err := s.GetImageByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.Can(actor, policy.ImageRead, image.UserID) {
		return nil, platformservice.NewForbiddenError(msgNotAllowed)
	}
	tags, err := s.imageStore.TagNamesByImageIDs([]uint{image.ID})
	if err != nil {
		return nil, platformservice.WrapInternalError("load tags failed", err)
	}
	names := tags[image.ID]
	if names == nil {
		names = []string{}
	}
	return &moduledto.ImageDetailResponse{ImageModel: toImageModel(image), Tags: names}, nil
}

// GetImageByID is the plain point lookup other modules use.
func (s *Service) GetImageByID(id uint) (*model.Image, error) {
	image, err := s.imageStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.WrapInternalError("load image failed", err)
	}
	return image, nil
}

func (s *Service) UpdateDescription(actor policy.Actor, id uint, description string) (*moduledto.ImageUpdateResponse, error) {
	description, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}
	image, err := s.GetImageByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.Can(actor, policy.ImageUpdate, image.UserID) {
		return nil, platformservice.NewForbiddenError(msgNotAllowed)
	}
	if err := s.imageStore.UpdateDescription(id, description); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.WrapInternalError("update image failed", err)
	}
	return &moduledto.ImageUpdateResponse{ID: id, Description: description, Detail: "image has been updated"}, nil
}

// DeleteImage removes the remote asset first. When the host fails the row is kept so the
// delete can be retried.
func (s *Service) DeleteImage(ctx context.Context, actor policy.Actor, id uint) error {
	image, err := s.GetImageByID(id)
	if err != nil {
		return err
	}
	if !policy.Can(actor, policy.ImageDelete, image.UserID) {
		return platformservice.NewForbiddenError(msgNotAllowed)
	}

	if image.PublicID != "" {
		if err := s.host.Delete(ctx, image.PublicID); err != nil {
			return platformservice.NewUpstreamError("delete from image host failed", err)
		}
	}

	if err := s.imageStore.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgImageNotFound)
		}
		return platformservice.WrapInternalError("delete image failed", err)
	}
	return nil
}

// ListUserImages returns a user's images, newest first.
func (s *Service) ListUserImages(userID uint) ([]moduledto.ImageModel, error) {
	if _, err := s.userStore.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("user not found")
		}
		return nil, platformservice.WrapInternalError("load user failed", err)
	}
	images, err := s.imageStore.ListByUserID(userID)
	if err != nil {
		return nil, platformservice.WrapInternalError("list images failed", err)
	}
	result := make([]moduledto.ImageModel, 0, len(images))
	for i := range images {
		result = append(result, toImageModel(&images[i]))
	}
	return result, nil
}

func (s *Service) deleteRemoteQuietly(ctx context.Context, publicID string) {
	if err := s.host.Delete(ctx, publicID); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("public_id", publicID).Msg("orphaned asset left on image host")
	}
}

func normalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > consts.MaxDescriptionLength {
		return "", platformservice.NewValidationError("description must not exceed 150 characters")
	}
	return description, nil
}

func parseTags(raw string) ([]string, error) {
	tags := utils.ParseTagList(raw)
	if len(tags) > consts.MaxTagsPerImage {
		return nil, platformservice.NewConflictError(msgOnlyFiveTags)
	}
	for _, tag := range tags {
		if !utils.ValidTagName(tag) {
			return nil, platformservice.NewValidationError("invalid tag name: " + tag)
		}
	}
	return tags, nil
}

func toImageModel(image *model.Image) moduledto.ImageModel {
	return moduledto.ImageModel{
		ID:          image.ID,
		URL:         image.URL,
		PublicID:    image.PublicID,
		UserID:      image.UserID,
		Description: image.Description,
		BlurHash:    image.BlurHash,
		QRURL:       image.QRURL,
		CreatedAt:   image.CreatedAt,
	}
}
