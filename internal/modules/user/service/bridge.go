package service

import "github.com/Dishalex/PhotoShare/internal/model"

// FindByID is the lookup the identity middleware and the auth module share.
func (s *Service) FindByID(id uint) (*model.User, error) {
	return s.userStore.FindByID(id)
}

func (s *Service) FindByUsername(username string) (*model.User, error) {
	return s.userStore.FindByUsername(username)
}

func (s *Service) FindByEmail(email string) (*model.User, error) {
	return s.userStore.FindByEmail(email)
}

func (s *Service) Create(user *model.User) error {
	return s.userStore.Create(user)
}

func (s *Service) CountAll() (int64, error) {
	return s.userStore.CountAll()
}

func (s *Service) UpdateRefreshToken(userID uint, token string) error {
	return s.userStore.UpdateRefreshToken(userID, token)
}
