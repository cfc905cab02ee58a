// Package qrcode renders QR codes that point at image URLs.
package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

type Renderer interface {
	Render(content string) ([]byte, error)
}

// PNGRenderer draws black modules on white with a quiet zone.
type PNGRenderer struct {
	Size int
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Size: 290}
}

func (r *PNGRenderer) Render(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr content is empty")
	}
	size := r.Size
	if size <= 0 {
		size = 290
	}
	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
