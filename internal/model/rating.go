package model

import "time"

// Rating is unique per (user_id, image_id).
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Rate      int       `json:"rate" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_ratings_user_image"`
	ImageID   uint      `json:"image_id" gorm:"not null;uniqueIndex:idx_ratings_user_image;index"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Image     Image     `gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
