package handler

import ratingservice "github.com/Dishalex/PhotoShare/internal/modules/rating/service"

type Handler struct {
	ratingService *ratingservice.Service
}

func New(ratingService *ratingservice.Service) *Handler {
	return &Handler{ratingService: ratingService}
}
