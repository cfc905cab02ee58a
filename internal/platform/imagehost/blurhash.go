package imagehost

import (
	"fmt"
	"image"

	"github.com/bbrks/go-blurhash"
	"golang.org/x/image/draw"
)

// A 64px thumbnail hashes the same as the full image for a 4x3 placeholder.
const blurHashSize = 64

// ComputeBlurHash returns a 4x3 component BlurHash of the encoded image.
func ComputeBlurHash(data []byte) (string, error) {
	img, err := Decode(data)
	if err != nil {
		return "", err
	}
	hash, err := blurhash.Encode(4, 3, thumbnail(img))
	if err != nil {
		return "", fmt.Errorf("encode blurhash: %w", err)
	}
	return hash, nil
}

func thumbnail(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= blurHashSize && h <= blurHashSize {
		return img
	}
	var tw, th int
	if w > h {
		tw, th = blurHashSize, max(1, h*blurHashSize/w)
	} else {
		th, tw = blurHashSize, max(1, w*blurHashSize/h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
