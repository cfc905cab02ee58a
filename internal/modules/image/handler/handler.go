package handler

import imageservice "github.com/Dishalex/PhotoShare/internal/modules/image/service"

type Handler struct {
	imageService *imageservice.Service
}

func New(imageService *imageservice.Service) *Handler {
	return &Handler{imageService: imageService}
}
