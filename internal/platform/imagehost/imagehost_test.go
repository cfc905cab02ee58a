package imagehost

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"

	"github.com/minio/minio-go/v7"
)

func testPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestGeneratePublicID(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC)
	id := GeneratePublicID("photo_share", "alice@example.com", now)

	if !strings.HasPrefix(id, "photo_share/") {
		t.Fatalf("missing folder: %q", id)
	}
	rest := strings.TrimPrefix(id, "photo_share/")
	if len(rest) != 12+14+6 {
		t.Fatalf("unexpected length %d for %q", len(rest), rest)
	}
	if !strings.HasSuffix(rest, "20240301102030123456") {
		t.Fatalf("unexpected timestamp suffix %q", rest)
	}
	if GeneratePublicID("photo_share", "bob@example.com", now) == id {
		t.Fatalf("different emails must give different ids")
	}
}

func TestOperationValidate(t *testing.T) {
	if err := (Operation{Kind: OpResize, Width: 0}).Validate(); err == nil {
		t.Fatalf("expected width 0 to be rejected")
	}
	if err := (Operation{Kind: OpResize, Width: 200}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Operation{Kind: "sepia"}).Validate(); err == nil {
		t.Fatalf("expected unknown kind to be rejected")
	}
}

func TestTransformationFor(t *testing.T) {
	cases := map[string]Operation{
		"w_300,c_pad":  {Kind: OpResize, Width: 300},
		"e_vignette":   {Kind: OpFadeEdges},
		"e_art:audrey": {Kind: OpBlackWhite},
	}
	for want, op := range cases {
		if got := transformationFor(op); got != want {
			t.Fatalf("transformationFor(%+v) = %q, want %q", op, got, want)
		}
	}
}

func TestApply_ResizeKeepsAspect(t *testing.T) {
	img, err := Decode(testPNG(t, 400, 200, color.RGBA{R: 200, A: 255}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := Apply(img, Operation{Kind: OpResize, Width: 200})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 100 {
		t.Fatalf("unexpected size %v", out.Bounds())
	}
}

func TestApply_BlackWhite(t *testing.T) {
	img, _ := Decode(testPNG(t, 8, 8, color.RGBA{R: 255, A: 255}))
	out, err := Apply(img, Operation{Kind: OpBlackWhite})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := out.(*image.Gray); !ok {
		t.Fatalf("expected a gray image, got %T", out)
	}
}

func TestApply_FadeEdgesLightensCorners(t *testing.T) {
	img, _ := Decode(testPNG(t, 40, 40, color.RGBA{A: 255}))
	out, err := Apply(img, Operation{Kind: OpFadeEdges})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	cr, _, _, _ := out.At(20, 20).RGBA()
	er, _, _, _ := out.At(0, 0).RGBA()
	if cr != 0 {
		t.Fatalf("center should stay black, got %d", cr)
	}
	if er <= 0x8000 {
		t.Fatalf("corner should fade towards white, got %d", er)
	}
}

func TestApply_FadeEdgesKeepsPremultipliedAlpha(t *testing.T) {
	img, _ := Decode(testPNG(t, 40, 40, color.NRGBA{A: 128}))
	out, err := Apply(img, Operation{Kind: OpFadeEdges})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	r, g, b, a := out.At(0, 0).RGBA()
	if r > a || g > a || b > a {
		t.Fatalf("channel above alpha: r=%d g=%d b=%d a=%d", r, g, b, a)
	}
	if r == 0 {
		t.Fatalf("corner should fade towards white")
	}
}

// hugePNG patches the IHDR of a 1x1 PNG so it declares w x h.
func hugePNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := testPNG(t, 1, 1, color.White)
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestCheckDimensions(t *testing.T) {
	if err := CheckDimensions(testPNG(t, 10, 10, color.White)); err != nil {
		t.Fatalf("small image rejected: %v", err)
	}
	if err := CheckDimensions(hugePNG(t, 12000, 12000)); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
	if err := CheckDimensions([]byte("not an image")); err == nil || errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDecodeAndBlurHash_RejectHugeCanvas(t *testing.T) {
	data := hugePNG(t, 12000, 12000)
	if _, err := Decode(data); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("Decode: expected ErrImageTooLarge, got %v", err)
	}
	if _, err := ComputeBlurHash(data); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("ComputeBlurHash: expected ErrImageTooLarge, got %v", err)
	}
	if _, err := ApplyBytes(data, Operation{Kind: OpBlackWhite}); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("ApplyBytes: expected ErrImageTooLarge, got %v", err)
	}
}

func TestApplyBytes_RejectsGarbage(t *testing.T) {
	if _, err := ApplyBytes([]byte("not an image"), Operation{Kind: OpBlackWhite}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestComputeBlurHash(t *testing.T) {
	hash, err := ComputeBlurHash(testPNG(t, 300, 150, color.RGBA{G: 128, B: 255, A: 255}))
	if err != nil {
		t.Fatalf("ComputeBlurHash: %v", err)
	}
	if len(hash) < 6 {
		t.Fatalf("unexpectedly short hash %q", hash)
	}
}

type fakeObjectStore struct {
	buckets map[string]bool
	objects map[string][]byte
	types   map[string]string
	failPut error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{buckets: map[string]bool{}, objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjectStore) BucketExists(_ context.Context, bucket string) (bool, error) {
	return f.buckets[bucket], nil
}

func (f *fakeObjectStore) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.buckets[bucket] = true
	return nil
}

func (f *fakeObjectStore) PutObject(_ context.Context, _ string, name string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.failPut != nil {
		return minio.UploadInfo{}, f.failPut
	}
	data, _ := io.ReadAll(r)
	f.objects[name] = data
	f.types[name] = opts.ContentType
	return minio.UploadInfo{Key: name, Size: int64(len(data))}, nil
}

func (f *fakeObjectStore) GetObject(context.Context, string, string, minio.GetObjectOptions) (*minio.Object, error) {
	return nil, errors.New("not supported by fake")
}

func (f *fakeObjectStore) RemoveObject(_ context.Context, _ string, name string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, name)
	return nil
}

func TestMinIOHost_UploadAndDelete(t *testing.T) {
	store := newFakeObjectStore()
	h := &MinIOHost{client: store, bucket: "photos", baseURL: "http://cdn.local", folder: "photo_share"}

	if err := h.EnsureBucket(context.Background()); err != nil {
		t.Fatalf("EnsureBucket: %v", err)
	}
	if !store.buckets["photos"] {
		t.Fatalf("bucket should have been created")
	}

	data := testPNG(t, 2, 2, color.White)
	asset, err := h.Upload(context.Background(), data, "photo_share/abc")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if asset.URL != "http://cdn.local/photos/photo_share/abc" || asset.PublicID != "photo_share/abc" {
		t.Fatalf("unexpected asset %+v", asset)
	}
	if store.types["photo_share/abc"] != "image/png" {
		t.Fatalf("unexpected content type %q", store.types["photo_share/abc"])
	}

	if err := h.Delete(context.Background(), "photo_share/abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := store.objects["photo_share/abc"]; ok {
		t.Fatalf("object should be gone")
	}
}

func TestMinIOHost_UploadError(t *testing.T) {
	store := newFakeObjectStore()
	store.failPut = errors.New("disk full")
	h := &MinIOHost{client: store, bucket: "photos", baseURL: "http://cdn.local"}

	if _, err := h.Upload(context.Background(), []byte("x"), "k"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), config.ImageHostConfig{Provider: "s3-magic"})
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestNewCloudinary_RequiresCredentials(t *testing.T) {
	if _, err := NewCloudinary(config.CloudinaryConfig{}, "photo_share"); err == nil {
		t.Fatalf("expected error without credentials")
	}
}
