package repo

import (
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type ImageStore interface {
	FindByID(id uint) (*model.Image, error)
}

type RatingStore interface {
	Create(rating *model.Rating) error
	FindByID(id uint) (*model.Rating, error)
	FindByUserAndImage(userID, imageID uint) (*model.Rating, error)
	UpdateRate(id uint, rate int) error
	Delete(id uint) error
	ListByUserID(userID uint) ([]model.Rating, error)
	AverageForImage(imageID uint) (*float64, error)
}

func NewRatingRepository(db *gorm.DB) RatingStore {
	return &RatingRepository{db: db}
}
