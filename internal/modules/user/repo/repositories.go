package repo

import (
	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	UpdateProfile(userID uint, updates map[string]interface{}) error
	UpdateAvatar(userID uint, avatarURL string) error
	UpdateRole(userID uint, role model.Role) error
	UpdateRefreshToken(userID uint, token string) error
	Delete(userID uint) error
	CountAll() (int64, error)
	CountImages(userID uint) (int64, error)
	ListImagePublicIDs(userID uint) ([]string, error)
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
