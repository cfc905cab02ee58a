package handler

import userservice "github.com/Dishalex/PhotoShare/internal/modules/user/service"

type Handler struct {
	userService *userservice.Service
}

func New(userService *userservice.Service) *Handler {
	return &Handler{userService: userService}
}
