package repo

import (
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateText rewrites the body only when authorID still owns the comment.
func (r *CommentRepository) UpdateText(id, authorID uint, text string) (bool, error) {
	res := r.db.Model(&model.Comment{}).
		Where("id = ? AND user_id = ?", id, authorID).
		Update("comment", text)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CommentRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CommentRepository) ListByImageID(imageID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("image_id = ?", imageID).
		Order("created_at asc").
		Order("id asc").
		Find(&comments).Error
	return comments, err
}
