package service

import (
	"context"

	"github.com/Dishalex/PhotoShare/internal/consts"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/image/dto"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

// ChangeSize stores a padded copy of the image at the given width. width 0 means the default.
func (s *Service) ChangeSize(ctx context.Context, actor policy.Actor, id uint, width int) (*moduledto.ImageAddResponse, error) {
	if width == 0 {
		width = consts.DefaultResizeWidth
	}
	return s.transform(ctx, actor, id, imagehost.Operation{Kind: imagehost.OpResize, Width: width}, "image size has been changed")
}

func (s *Service) FadeEdges(ctx context.Context, actor policy.Actor, id uint) (*moduledto.ImageAddResponse, error) {
	return s.transform(ctx, actor, id, imagehost.Operation{Kind: imagehost.OpFadeEdges}, "fade edges effect has been added")
}

func (s *Service) BlackWhite(ctx context.Context, actor policy.Actor, id uint) (*moduledto.ImageAddResponse, error) {
	return s.transform(ctx, actor, id, imagehost.Operation{Kind: imagehost.OpBlackWhite}, "black and white effect has been added")
}

// transform derives a new asset from the source and stores it as a new row. The source row
// and asset stay as they are.
func (s *Service) transform(ctx context.Context, actor policy.Actor, id uint, op imagehost.Operation, detail string) (*moduledto.ImageAddResponse, error) {
	if err := op.Validate(); err != nil {
		return nil, platformservice.NewValidationError(err.Error())
	}
	source, err := s.GetImageByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.Can(actor, policy.ImageTransform, source.UserID) {
		return nil, platformservice.NewForbiddenError(msgNotAllowed)
	}

	asset, err := s.host.Transform(ctx, source.PublicID, op)
	if err != nil {
		return nil, platformservice.NewUpstreamError("image host transform failed", err)
	}

	derived, err := s.AddImage(source.UserID, asset.URL, asset.PublicID, source.Description)
	if err != nil {
		s.deleteRemoteQuietly(ctx, asset.PublicID)
		return nil, err
	}
	return &moduledto.ImageAddResponse{Image: toImageModel(derived), Detail: detail}, nil
}
