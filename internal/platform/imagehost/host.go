// Package imagehost talks to the remote store that keeps image bytes. Cloudinary transforms
// on its side; MinIO stores plain objects and the transforms run locally.
package imagehost

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/consts"
)

// Asset is a stored image as the host addresses it.
type Asset struct {
	URL      string
	PublicID string
}

type OpKind string

const (
	OpResize     OpKind = "resize"
	OpFadeEdges  OpKind = "fade_edges"
	OpBlackWhite OpKind = "black_white"
)

type Operation struct {
	Kind  OpKind
	Width int // OpResize only
}

func (op Operation) Validate() error {
	switch op.Kind {
	case OpResize:
		if op.Width <= 0 || op.Width > consts.MaxResizeWidth {
			return fmt.Errorf("width must be between 1 and %d", consts.MaxResizeWidth)
		}
	case OpFadeEdges, OpBlackWhite:
	default:
		return fmt.Errorf("unknown operation %q", op.Kind)
	}
	return nil
}

// Host stores, transforms and deletes images. Transform always produces a new asset and
// leaves the source untouched.
type Host interface {
	Upload(ctx context.Context, data []byte, publicID string) (Asset, error)
	Transform(ctx context.Context, publicID string, op Operation) (Asset, error)
	Delete(ctx context.Context, publicID string) error
}

var ErrUnknownProvider = errors.New("unknown image host provider")

// New builds the configured provider wrapped with metrics.
func New(ctx context.Context, cfg config.ImageHostConfig) (Host, error) {
	folder := cfg.Folder
	if folder == "" {
		folder = consts.PublicIDFolder
	}

	switch strings.ToLower(cfg.Provider) {
	case "", "cloudinary":
		h, err := NewCloudinary(cfg.Cloudinary, folder)
		if err != nil {
			return nil, err
		}
		return Instrument("cloudinary", h), nil
	case "minio":
		h, err := NewMinIO(cfg.MinIO, folder)
		if err != nil {
			return nil, err
		}
		if err := h.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return Instrument("minio", h), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// GeneratePublicID names an asset after the uploader: folder/<sha256(email)[:12]><timestamp>.
func GeneratePublicID(folder, email string, now time.Time) string {
	sum := sha256.Sum256([]byte(email))
	name := hex.EncodeToString(sum[:])[:12]
	now = now.UTC()
	return fmt.Sprintf("%s/%s%s%06d", folder, name, now.Format("20060102150405"), now.Nanosecond()/1000)
}
