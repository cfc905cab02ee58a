package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
	"github.com/Dishalex/PhotoShare/internal/utils"
)

// ReadImageUpload checks an uploaded image against the runtime settings (size, extension,
// magic bytes) and the pixel cap, and returns its content and lowercase extension.
func (s *AppService) ReadImageUpload(file *multipart.FileHeader) ([]byte, string, error) {
	if file == nil {
		return nil, "", NewValidationError("no file uploaded")
	}

	maxSizeMB := s.GetInt(consts.ConfigMaxUploadSize)
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	maxBytes := int64(maxSizeMB) * 1024 * 1024
	if file.Size > maxBytes {
		return nil, "", NewValidationError(fmt.Sprintf("file must not exceed %dMB", maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return nil, "", NewValidationError("unable to determine file type")
	}
	allowed := false
	for _, allowExt := range strings.Split(s.GetString(consts.ConfigAllowFileExtensions), ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ext, NewValidationError("unsupported file type: " + ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, ext, NewValidationError("unable to open uploaded file")
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, ext, WrapInternalError("read upload failed", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ext, NewValidationError(fmt.Sprintf("file must not exceed %dMB", maxSizeMB))
	}
	if len(data) == 0 {
		return nil, ext, NewValidationError("uploaded file is empty")
	}

	if valid, msg := utils.ValidateImageContent(data, ext); !valid {
		return nil, ext, NewValidationError(msg)
	}
	if err := imagehost.CheckDimensions(data); err != nil {
		if errors.Is(err, imagehost.ErrImageTooLarge) {
			return nil, ext, NewValidationError(fmt.Sprintf("image must not exceed %d megapixels", consts.MaxImagePixels/1_000_000))
		}
		return nil, ext, NewValidationError("unable to read image")
	}
	return data, ext, nil
}
