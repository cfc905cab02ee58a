package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/metrics"
	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"

	"gorm.io/gorm"
)

const (
	msgCommentNotFound = "comment not found"
	msgImageNotFound   = "image not found"
)

func normalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", platformservice.NewValidationError("comment must not be empty")
	}
	if utf8.RuneCountInString(text) > consts.MaxCommentLength {
		return "", platformservice.NewValidationError("comment must not exceed 255 characters")
	}
	return text, nil
}

func (s *Service) CreateComment(actor policy.Actor, imageID uint, text string) (*model.Comment, error) {
	text, err := normalizeText(text)
	if err != nil {
		return nil, err
	}
	if _, err := s.imageStore.FindByID(imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.WrapInternalError("load image failed", err)
	}

	comment := &model.Comment{ImageID: imageID, UserID: actor.ID, Comment: text}
	if err := s.commentStore.Create(comment); err != nil {
		return nil, platformservice.WrapInternalError("create comment failed", err)
	}
	metrics.CommentsCreated.Inc()
	return comment, nil
}

// UpdateComment rewrites a comment for its author. ok is false when the comment does not exist
// or belongs to someone else; moderators and admins cannot edit comments.
func (s *Service) UpdateComment(actor policy.Actor, id uint, text string) (*model.Comment, bool, error) {
	text, err := normalizeText(text)
	if err != nil {
		return nil, false, err
	}
	comment, err := s.commentStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, platformservice.WrapInternalError("load comment failed", err)
	}
	if !policy.Can(actor, policy.CommentUpdate, comment.UserID) {
		return nil, false, nil
	}

	updated, err := s.commentStore.UpdateText(id, comment.UserID, text)
	if err != nil {
		return nil, false, platformservice.WrapInternalError("update comment failed", err)
	}
	if !updated {
		return nil, false, nil
	}
	comment, err = s.commentStore.FindByID(id)
	if err != nil {
		return nil, false, platformservice.WrapInternalError("reload comment failed", err)
	}
	return comment, true, nil
}

func (s *Service) DeleteComment(actor policy.Actor, id uint) error {
	comment, err := s.commentStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgCommentNotFound)
		}
		return platformservice.WrapInternalError("load comment failed", err)
	}
	if !policy.Can(actor, policy.CommentDelete, comment.UserID) {
		return platformservice.NewForbiddenError("operation not permitted")
	}
	if err := s.commentStore.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgCommentNotFound)
		}
		return platformservice.WrapInternalError("delete comment failed", err)
	}
	return nil
}

// ListImageComments returns the comments of an image, oldest first.
func (s *Service) ListImageComments(imageID uint) ([]model.Comment, error) {
	if _, err := s.imageStore.FindByID(imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.WrapInternalError("load image failed", err)
	}
	comments, err := s.commentStore.ListByImageID(imageID)
	if err != nil {
		return nil, platformservice.WrapInternalError("list comments failed", err)
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}
