package model

import "time"

type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
	URL         string    `json:"url" gorm:"size:255;not null"`
	PublicID    string    `json:"public_id" gorm:"size:150"`
	Description string    `json:"description" gorm:"size:150"`
	QRURL       string    `json:"qr_url,omitempty" gorm:"column:qr_url;size:255"`
	BlurHash    string    `json:"blur_hash,omitempty" gorm:"size:64"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
