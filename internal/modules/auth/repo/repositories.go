package repo

import "github.com/Dishalex/PhotoShare/internal/model"

// UserStore is the slice of the user module auth works with.
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	CountAll() (int64, error)
	UpdateRefreshToken(userID uint, token string) error
}
