package dto

type RateRequest struct {
	Rate int `json:"rate" binding:"required,min=1,max=5"`
}

type AverageRatingResponse struct {
	AverageRating *float64 `json:"average_rating"`
	ImageURL      string   `json:"image_url"`
}
