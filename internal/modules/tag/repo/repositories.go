package repo

import (
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type TagStore interface {
	Create(tag *model.Tag) error
	FindByID(id uint) (*model.Tag, error)
	FindByName(name string) (*model.Tag, error)
	List(offset, limit int) ([]model.Tag, error)
	Rename(id uint, name string) error
	DeleteByID(id uint) error
	DeleteByName(name string) error
}

func NewTagRepository(db *gorm.DB) TagStore {
	return &TagRepository{db: db}
}
