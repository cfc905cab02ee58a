package repo

import (
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}
