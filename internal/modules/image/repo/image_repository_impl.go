package repo

import (
	"errors"
	"strings"

	"github.com/Dishalex/PhotoShare/internal/db"
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

// CreateWithTags inserts the image and links its tags in one transaction.
func (r *ImageRepository) CreateWithTags(image *model.Image, tagNames []string, maxTags int) error {
	if len(tagNames) > maxTags {
		return ErrTooManyTags
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(image).Error; err != nil {
			return err
		}
		for _, name := range tagNames {
			tag, err := findOrCreateTag(tx, name)
			if err != nil {
				return err
			}
			if err := tx.Create(&model.ImageTag{ImageID: image.ID, TagID: tag.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ImageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) UpdateDescription(id uint, description string) error {
	res := r.db.Model(&model.Image{}).Where("id = ?", id).Update("description", description)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetQRURLIfEmpty stores qrURL unless another request stored one first.
func (r *ImageRepository) SetQRURLIfEmpty(id uint, qrURL string) (bool, error) {
	res := r.db.Model(&model.Image{}).
		Where("id = ? AND (qr_url IS NULL OR qr_url = '')", id).
		Update("qr_url", qrURL)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete removes the row; comments, ratings and tag links follow by cascade.
func (r *ImageRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Image{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ImageRepository) ListByUserID(userID uint) ([]model.Image, error) {
	var images []model.Image
	err := r.db.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&images).Error
	return images, err
}

func (r *ImageRepository) Search(params SearchParams) ([]model.Image, error) {
	query := r.db.Model(&model.Image{})
	if params.Keyword != "" {
		query = query.Where("LOWER(description) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(params.Keyword))+"%")
	}
	if params.Tag != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM image_tags JOIN tags ON tags.id = image_tags.tag_id WHERE image_tags.image_id = images.id AND tags.name = ?)",
			params.Tag,
		)
	}
	query = query.Order("created_at desc, id desc")
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}

	var images []model.Image
	err := query.Find(&images).Error
	return images, err
}

// AttachTag links tagName to the image, creating the tag when needed. It reports false when
// the link already existed and ErrTooManyTags when the image is full.
func (r *ImageRepository) AttachTag(imageID uint, tagName string, maxTags int) (bool, error) {
	added := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// serialize concurrent tagging of the same image where the engine supports it
		var image model.Image
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&image, imageID).Error; err != nil {
			return err
		}

		tag, err := findOrCreateTag(tx, tagName)
		if err != nil {
			return err
		}

		var linked int64
		if err := tx.Model(&model.ImageTag{}).Where("image_id = ? AND tag_id = ?", imageID, tag.ID).Count(&linked).Error; err != nil {
			return err
		}
		if linked > 0 {
			return nil
		}

		var count int64
		if err := tx.Model(&model.ImageTag{}).Where("image_id = ?", imageID).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(maxTags) {
			return ErrTooManyTags
		}
		if err := tx.Create(&model.ImageTag{ImageID: imageID, TagID: tag.ID}).Error; err != nil {
			return err
		}
		added = true
		return nil
	})
	return added, err
}

func (r *ImageRepository) TagNamesByImageIDs(ids []uint) (map[uint][]string, error) {
	result := make(map[uint][]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []struct {
		ImageID uint
		Name    string
	}
	err := r.db.Table("image_tags").
		Select("image_tags.image_id, tags.name").
		Joins("JOIN tags ON tags.id = image_tags.tag_id").
		Where("image_tags.image_id IN ?", ids).
		Order("image_tags.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ImageID] = append(result[row.ImageID], row.Name)
	}
	return result, nil
}

// AverageRatingsByImageIDs leaves unrated images out of the map.
func (r *ImageRepository) AverageRatingsByImageIDs(ids []uint) (map[uint]float64, error) {
	result := make(map[uint]float64, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []struct {
		ImageID uint
		Average float64
	}
	err := r.db.Model(&model.Rating{}).
		Select("image_id, AVG(rate) AS average").
		Where("image_id IN ?", ids).
		Group("image_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ImageID] = row.Average
	}
	return result, nil
}

func (r *ImageRepository) CommentsByImageIDs(ids []uint) (map[uint][]CommentByUser, error) {
	result := make(map[uint][]CommentByUser, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []CommentByUser
	err := r.db.Model(&model.Comment{}).
		Select("image_id, user_id, comment").
		Where("image_id IN ?", ids).
		Order("created_at asc, id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ImageID] = append(result[row.ImageID], row)
	}
	return result, nil
}

// findOrCreateTag must run inside a transaction. A concurrent insert of the same name is
// rolled back to a savepoint and the winner's row is returned.
func findOrCreateTag(tx *gorm.DB, name string) (*model.Tag, error) {
	var tag model.Tag
	err := tx.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := tx.SavePoint(tagInsertSavePoint).Error; err != nil {
		return nil, err
	}
	tag = model.Tag{Name: name}
	if err := tx.Create(&tag).Error; err != nil {
		if !db.IsDuplicateKey(err) {
			return nil, err
		}
		if err := tx.RollbackTo(tagInsertSavePoint).Error; err != nil {
			return nil, err
		}
		tag = model.Tag{}
		if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, err
		}
	}
	return &tag, nil
}

const tagInsertSavePoint = "tag_insert"

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
