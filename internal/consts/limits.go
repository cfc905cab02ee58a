package consts

const (
	// MaxTagsPerImage caps the tag links of a single image
	MaxTagsPerImage = 5

	MaxTagNameLength     = 25
	MaxDescriptionLength = 150
	MaxCommentLength     = 255

	MinRate = 1
	MaxRate = 5

	// DefaultResizeWidth is used by change_size when the request omits a width.
	DefaultResizeWidth = 200
	MaxResizeWidth     = 4096

	// MaxImagePixels caps width*height of any image the server decodes.
	MaxImagePixels = 40_000_000

	// PublicIDFolder is the default folder on the image host
	PublicIDFolder = "photo_share"
)
