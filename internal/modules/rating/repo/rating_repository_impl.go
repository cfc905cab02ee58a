package repo

import (
	"database/sql"

	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func (r *RatingRepository) Create(rating *model.Rating) error {
	return r.db.Create(rating).Error
}

func (r *RatingRepository) FindByID(id uint) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) FindByUserAndImage(userID, imageID uint) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.Where("user_id = ? AND image_id = ?", userID, imageID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) UpdateRate(id uint, rate int) error {
	res := r.db.Model(&model.Rating{}).Where("id = ?", id).Update("rate", rate)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RatingRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Rating{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RatingRepository) ListByUserID(userID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&ratings).Error
	return ratings, err
}

// AverageForImage returns nil when the image has no ratings.
func (r *RatingRepository) AverageForImage(imageID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&model.Rating{}).
		Select("AVG(rate)").
		Where("image_id = ?", imageID).
		Row().
		Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
