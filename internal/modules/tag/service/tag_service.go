package service

import (
	"errors"

	"github.com/Dishalex/PhotoShare/internal/db"
	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"gorm.io/gorm"
)

const (
	msgTagNotFound = "tag not found"
	msgTagExists   = "tag already exists"
)

func normalize(name string) (string, error) {
	name = utils.NormalizeTagName(name)
	if !utils.ValidTagName(name) {
		return "", platformservice.NewValidationError("invalid tag name")
	}
	return name, nil
}

// CreateTag stores a new lowercase tag.
func (s *Service) CreateTag(name string) (*model.Tag, error) {
	name, err := normalize(name)
	if err != nil {
		return nil, err
	}
	tag := &model.Tag{Name: name}
	if err := s.tagStore.Create(tag); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, platformservice.NewConflictError(msgTagExists)
		}
		return nil, platformservice.WrapInternalError("create tag failed", err)
	}
	return tag, nil
}

func (s *Service) ListTags(offset, limit int) ([]model.Tag, error) {
	tags, err := s.tagStore.List(offset, limit)
	if err != nil {
		return nil, platformservice.WrapInternalError("list tags failed", err)
	}
	return tags, nil
}

func (s *Service) GetTagByID(id uint) (*model.Tag, error) {
	tag, err := s.tagStore.FindByID(id)
	return tag, mapLookupError(err)
}

func (s *Service) GetTagByName(name string) (*model.Tag, error) {
	tag, err := s.tagStore.FindByName(utils.NormalizeTagName(name))
	return tag, mapLookupError(err)
}

// RenameTag is reserved to moderators and admins.
func (s *Service) RenameTag(actor policy.Actor, id uint, name string) (*model.Tag, error) {
	if !policy.Can(actor, policy.TagManage, 0) {
		return nil, platformservice.NewForbiddenError("operation not permitted")
	}
	name, err := normalize(name)
	if err != nil {
		return nil, err
	}
	if err := s.tagStore.Rename(id, name); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, platformservice.NewConflictError(msgTagExists)
		}
		return nil, mapLookupError(err)
	}
	return &model.Tag{ID: id, Name: name}, nil
}

func (s *Service) DeleteTagByID(actor policy.Actor, id uint) error {
	if !policy.Can(actor, policy.TagManage, 0) {
		return platformservice.NewForbiddenError("operation not permitted")
	}
	return mapLookupError(s.tagStore.DeleteByID(id))
}

func (s *Service) DeleteTagByName(actor policy.Actor, name string) error {
	if !policy.Can(actor, policy.TagManage, 0) {
		return platformservice.NewForbiddenError("operation not permitted")
	}
	return mapLookupError(s.tagStore.DeleteByName(utils.NormalizeTagName(name)))
}

func mapLookupError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return platformservice.NewNotFoundError(msgTagNotFound)
	default:
		return platformservice.WrapInternalError("tag operation failed", err)
	}
}
