package dto

import (
	"time"

	"github.com/Dishalex/PhotoShare/internal/modules/image/repo"
)

type ImageModel struct {
	ID          uint      `json:"id"`
	URL         string    `json:"url"`
	PublicID    string    `json:"public_id"`
	UserID      uint      `json:"user_id"`
	Description string    `json:"description"`
	BlurHash    string    `json:"blur_hash,omitempty"`
	QRURL       string    `json:"qr_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ImageAddResponse struct {
	Image  ImageModel `json:"image"`
	Detail string     `json:"detail"`
}

type ImageDetailResponse struct {
	ImageModel
	Tags []string `json:"tags"`
}

type ImageUpdateResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
}

// ImageProfile is one search result; AverageRating is null for unrated images.
type ImageProfile struct {
	ID            uint                 `json:"id"`
	URL           string               `json:"url"`
	Description   string               `json:"description"`
	AverageRating *float64             `json:"average_rating"`
	Tags          []string             `json:"tags"`
	Comments      []repo.CommentByUser `json:"comments"`
}

type ImagesByFilter struct {
	Images []ImageProfile `json:"images"`
}

type ImageQRResponse struct {
	ImageID   uint   `json:"image_id"`
	QRCodeURL string `json:"qr_code_url"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"max=150"`
}

type AddTagRequest struct {
	ImageID uint   `json:"image_id" binding:"required"`
	TagName string `json:"tag_name" binding:"required,tagname"`
}

type ImageIDRequest struct {
	ID uint `json:"id" binding:"required"`
}

type ChangeSizeRequest struct {
	ID    uint `json:"id" binding:"required"`
	Width int  `json:"width" binding:"omitempty,min=1,max=4096"`
}
