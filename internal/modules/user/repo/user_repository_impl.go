package repo

import (
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) UpdateProfile(userID uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := r.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) UpdateAvatar(userID uint, avatarURL string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("avatar", avatarURL).Error
}

func (r *UserRepository) UpdateRole(userID uint, role model.Role) error {
	res := r.db.Model(&model.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRefreshToken(userID uint, token string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("refresh_token", token).Error
}

// Delete removes the user row. Images, comments and ratings go with it through the
// foreign key cascades.
func (r *UserRepository) Delete(userID uint) error {
	res := r.db.Delete(&model.User{}, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountImages(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Image{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *UserRepository) ListImagePublicIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Image{}).
		Where("user_id = ? AND public_id <> ''", userID).
		Order("id asc").
		Pluck("public_id", &ids).Error
	return ids, err
}
