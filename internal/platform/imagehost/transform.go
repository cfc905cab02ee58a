package imagehost

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"

	"github.com/Dishalex/PhotoShare/internal/consts"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrImageTooLarge reports an image whose declared size exceeds consts.MaxImagePixels.
var ErrImageTooLarge = errors.New("image dimensions too large")

// CheckDimensions reads only the image header, so a small file that declares a huge canvas
// is rejected before any pixel buffer is allocated.
func CheckDimensions(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("decode image config: empty image")
	}
	if int64(cfg.Width)*int64(cfg.Height) > consts.MaxImagePixels {
		return fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	return nil
}

// Decode reads any registered format (png, jpeg, gif, webp) after CheckDimensions.
func Decode(data []byte) (image.Image, error) {
	if err := CheckDimensions(data); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ApplyBytes decodes src, applies op and returns PNG bytes.
func ApplyBytes(src []byte, op Operation) ([]byte, error) {
	img, err := Decode(src)
	if err != nil {
		return nil, err
	}
	out, err := Apply(img, op)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func Apply(img image.Image, op Operation) (image.Image, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	switch op.Kind {
	case OpResize:
		return resizeToWidth(img, op.Width), nil
	case OpFadeEdges:
		return vignette(img), nil
	case OpBlackWhite:
		return grayscale(img), nil
	}
	return nil, fmt.Errorf("unknown operation %q", op.Kind)
}

// resizeToWidth keeps the aspect ratio.
func resizeToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func grayscale(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// vignette blends pixels towards white as they get further from the center. The inner 50%
// of the radius is left unchanged. Colors are alpha-premultiplied, so white at alpha a is
// (a, a, a, a).
func vignette(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	cx, cy := float64(w)/2, float64(h)/2
	maxDist := math.Hypot(cx, cy)
	inner := maxDist * 0.5

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			t := 0.0
			if d > inner && maxDist > inner {
				t = (d - inner) / (maxDist - inner)
				if t > 1 {
					t = 1
				}
			}
			dst.Set(x, y, color.RGBA64{
				R: fade(r, a, t),
				G: fade(g, a, t),
				B: fade(bl, a, t),
				A: uint16(a),
			})
		}
	}
	return dst
}

func fade(c, a uint32, t float64) uint16 {
	v := float64(c) + (float64(a)-float64(c))*t
	if v > float64(a) {
		v = float64(a)
	}
	return uint16(v)
}
