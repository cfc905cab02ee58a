package dto

type CreateCommentRequest struct {
	ImageID uint   `json:"image_id" binding:"required"`
	Comment string `json:"comment" binding:"required,max=255"`
}

type UpdateCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=255"`
}
