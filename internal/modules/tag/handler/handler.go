package handler

import tagservice "github.com/Dishalex/PhotoShare/internal/modules/tag/service"

type Handler struct {
	tagService *tagservice.Service
}

func New(tagService *tagservice.Service) *Handler {
	return &Handler{tagService: tagService}
}
