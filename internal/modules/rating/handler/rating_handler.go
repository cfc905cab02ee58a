package handler

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/rating/dto"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

const msgRatingNotPermitted = "operation not permitted"

func (h *Handler) CreateRate(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseIDParam(c, "image_id")
	if !ok {
		return
	}
	var req moduledto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	rating, err := h.ratingService.CreateRate(actor, imageID, req.Rate)
	if err != nil {
		httpx.WriteServiceError(c, err, "rate image failed")
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (h *Handler) EditRate(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
		return
	}

	rating, changed, err := h.ratingService.EditRate(actor, id, req.Rate)
	if err != nil {
		httpx.WriteServiceError(c, err, "update rating failed")
		return
	}
	if !changed {
		c.JSON(http.StatusForbidden, gin.H{"error": msgRatingNotPermitted})
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *Handler) DeleteRate(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	rating, removed, err := h.ratingService.DeleteRate(actor, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "delete rating failed")
		return
	}
	if !removed {
		c.JSON(http.StatusForbidden, gin.H{"error": msgRatingNotPermitted})
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *Handler) CalculateRating(c *gin.Context) {
	imageID, ok := httpx.ParseIDParam(c, "image_id")
	if !ok {
		return
	}
	resp, err := h.ratingService.CalculateRating(imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "calculate rating failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ShowMyRatings(c *gin.Context) {
	actor, ok := httpx.MustActor(c)
	if !ok {
		return
	}
	ratings, err := h.ratingService.ShowMyRatings(actor)
	if err != nil {
		httpx.WriteServiceError(c, err, "list ratings failed")
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (h *Handler) UserRateImage(c *gin.Context) {
	userID, ok := httpx.ParseIDParam(c, "user_id")
	if !ok {
		return
	}
	imageID, ok := httpx.ParseIDParam(c, "image_id")
	if !ok {
		return
	}
	rating, err := h.ratingService.UserRateImage(userID, imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "load rating failed")
		return
	}
	c.JSON(http.StatusOK, rating)
}
