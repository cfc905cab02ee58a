package handler

import systemservice "github.com/Dishalex/PhotoShare/internal/modules/system/service"

type Handler struct {
	systemService *systemservice.Service
}

func New(systemService *systemservice.Service) *Handler {
	return &Handler{systemService: systemService}
}
