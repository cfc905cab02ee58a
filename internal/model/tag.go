package model

type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"tag_name" gorm:"size:25;unique;not null"`
}

// ImageTag links images and tags; both sides cascade on delete
type ImageTag struct {
	ID      uint  `json:"id" gorm:"primaryKey"`
	ImageID uint  `json:"image_id" gorm:"not null;uniqueIndex:idx_image_tags_pair"`
	TagID   uint  `json:"tag_id" gorm:"not null;uniqueIndex:idx_image_tags_pair;index"`
	Image   Image `gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Tag     Tag   `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (ImageTag) TableName() string {
	return "image_tags"
}
