package imagehost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dishalex/PhotoShare/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// objectStore is the slice of *minio.Client the host uses.
type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinIOHost stores objects in an S3 compatible bucket and transforms them in process.
type MinIOHost struct {
	client  objectStore
	bucket  string
	baseURL string
	folder  string
}

func NewMinIO(cfg config.MinIOConfig, folder string) (*MinIOHost, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("minio endpoint and bucket are required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.SSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	base := strings.TrimRight(cfg.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.SSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}
	return &MinIOHost{client: client, bucket: cfg.Bucket, baseURL: base, folder: folder}, nil
}

func (h *MinIOHost) EnsureBucket(ctx context.Context) error {
	ok, err := h.client.BucketExists(ctx, h.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", h.bucket, err)
	}
	if ok {
		return nil
	}
	if err := h.client.MakeBucket(ctx, h.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %q: %w", h.bucket, err)
	}
	return nil
}

func (h *MinIOHost) Upload(ctx context.Context, data []byte, publicID string) (Asset, error) {
	_, err := h.client.PutObject(ctx, h.bucket, publicID, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		return Asset{}, fmt.Errorf("minio put %q: %w", publicID, err)
	}
	return Asset{URL: h.objectURL(publicID), PublicID: publicID}, nil
}

func (h *MinIOHost) Transform(ctx context.Context, publicID string, op Operation) (Asset, error) {
	if err := op.Validate(); err != nil {
		return Asset{}, err
	}
	obj, err := h.client.GetObject(ctx, h.bucket, publicID, minio.GetObjectOptions{})
	if err != nil {
		return Asset{}, fmt.Errorf("minio get %q: %w", publicID, err)
	}
	defer obj.Close()

	src, err := io.ReadAll(obj)
	if err != nil {
		return Asset{}, fmt.Errorf("minio read %q: %w", publicID, err)
	}
	out, err := ApplyBytes(src, op)
	if err != nil {
		return Asset{}, err
	}
	return h.Upload(ctx, out, h.folder+"/"+uuid.NewString())
}

func (h *MinIOHost) Delete(ctx context.Context, publicID string) error {
	if err := h.client.RemoveObject(ctx, h.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio remove %q: %w", publicID, err)
	}
	return nil
}

func (h *MinIOHost) objectURL(objectName string) string {
	return h.baseURL + "/" + h.bucket + "/" + objectName
}
