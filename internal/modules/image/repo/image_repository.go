package repo

import (
	"errors"

	"github.com/Dishalex/PhotoShare/internal/model"
)

// ErrTooManyTags is returned when a link would push an image past its tag limit.
var ErrTooManyTags = errors.New("image tag limit reached")

type SearchParams struct {
	Keyword string // case-insensitive substring of the description
	Tag     string // exact, already normalized tag name
	Offset  int
	Limit   int // 0 means no limit
}

// CommentByUser is the trimmed comment shape embedded in search results.
type CommentByUser struct {
	ImageID uint   `json:"-"`
	UserID  uint   `json:"user_id"`
	Comment string `json:"comment"`
}

type ImageStore interface {
	Create(image *model.Image) error
	CreateWithTags(image *model.Image, tagNames []string, maxTags int) error
	FindByID(id uint) (*model.Image, error)
	UpdateDescription(id uint, description string) error
	SetQRURLIfEmpty(id uint, qrURL string) (bool, error)
	Delete(id uint) error
	ListByUserID(userID uint) ([]model.Image, error)
	Search(params SearchParams) ([]model.Image, error)
	AttachTag(imageID uint, tagName string, maxTags int) (bool, error)
	TagNamesByImageIDs(ids []uint) (map[uint][]string, error)
	AverageRatingsByImageIDs(ids []uint) (map[uint]float64, error)
	CommentsByImageIDs(ids []uint) (map[uint][]CommentByUser, error)
}
