package testutils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/Dishalex/PhotoShare/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user with password "password123".
func CreateUser(t *testing.T, gdb *gorm.DB, username string, role model.Role) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     role,
	}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// CreateImage inserts an image row owned by userID.
func CreateImage(t *testing.T, gdb *gorm.DB, userID uint, description string) model.Image {
	t.Helper()
	var n int64
	gdb.Model(&model.Image{}).Count(&n)
	img := model.Image{
		UserID:      userID,
		URL:         fmt.Sprintf("https://img.test/photo_share/%d-%d.png", userID, n+1),
		PublicID:    fmt.Sprintf("photo_share/%d-%d", userID, n+1),
		Description: description,
	}
	if err := gdb.Create(&img).Error; err != nil {
		t.Fatalf("create image: %v", err)
	}
	return img
}

// MinimalPNG returns a valid w x h PNG.
func MinimalPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// PNGWithDeclaredSize returns a few hundred bytes of PNG whose header claims a w x h canvas.
func PNGWithDeclaredSize(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := MinimalPNG(t, 1, 1)
	// IHDR data sits at [16:29], its CRC at [29:33].
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}
