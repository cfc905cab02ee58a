package handler

import commentservice "github.com/Dishalex/PhotoShare/internal/modules/comment/service"

type Handler struct {
	commentService *commentservice.Service
}

func New(commentService *commentservice.Service) *Handler {
	return &Handler{commentService: commentService}
}
