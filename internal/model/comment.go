package model

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Comment   string    `json:"comment" gorm:"size:255;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ImageID   uint      `json:"image_id" gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Image     Image     `gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
