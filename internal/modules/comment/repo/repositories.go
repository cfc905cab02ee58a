package repo

import (
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type ImageStore interface {
	FindByID(id uint) (*model.Image, error)
}

type CommentStore interface {
	Create(comment *model.Comment) error
	FindByID(id uint) (*model.Comment, error)
	UpdateText(id, authorID uint, text string) (bool, error)
	Delete(id uint) error
	ListByImageID(imageID uint) ([]model.Comment, error)
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}
