package imagehost

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Dishalex/PhotoShare/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryHost keeps images on Cloudinary and lets it render transformations.
type CloudinaryHost struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cfg config.CloudinaryConfig, folder string) (*CloudinaryHost, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryHost{cld: cld, folder: folder}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, data []byte, publicID string) (Asset, error) {
	resp, err := h.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{PublicID: publicID})
	if err != nil {
		return Asset{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return Asset{}, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return Asset{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// Transform asks Cloudinary for a derived URL and stores the rendered result as a new asset.
func (h *CloudinaryHost) Transform(ctx context.Context, publicID string, op Operation) (Asset, error) {
	if err := op.Validate(); err != nil {
		return Asset{}, err
	}
	img, err := h.cld.Image(publicID)
	if err != nil {
		return Asset{}, fmt.Errorf("cloudinary image %q: %w", publicID, err)
	}
	img.Transformation = transformationFor(op)
	derived, err := img.String()
	if err != nil {
		return Asset{}, fmt.Errorf("cloudinary build url: %w", err)
	}

	resp, err := h.cld.Upload.Upload(ctx, derived, uploader.UploadParams{Folder: h.folder})
	if err != nil {
		return Asset{}, fmt.Errorf("cloudinary upload derived: %w", err)
	}
	if resp.Error.Message != "" {
		return Asset{}, fmt.Errorf("cloudinary upload derived: %s", resp.Error.Message)
	}
	return Asset{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

func (h *CloudinaryHost) Delete(ctx context.Context, publicID string) error {
	resp, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Error.Message)
	}
	// "not found" means it is already gone
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: unexpected result %q", resp.Result)
	}
	return nil
}

func transformationFor(op Operation) string {
	switch op.Kind {
	case OpResize:
		return fmt.Sprintf("w_%d,c_pad", op.Width)
	case OpFadeEdges:
		return "e_vignette"
	case OpBlackWhite:
		return "e_art:audrey"
	}
	return ""
}
