package handler

import settingsservice "github.com/Dishalex/PhotoShare/internal/modules/settings/service"

type Handler struct {
	settingsService *settingsservice.Service
}

func New(settingsService *settingsservice.Service) *Handler {
	return &Handler{settingsService: settingsService}
}
