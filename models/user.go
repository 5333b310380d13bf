package models

import "blogly/config"

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	FirstName string `gorm:"type:varchar(50);not null"`
	LastName  string `gorm:"type:varchar(50);not null"`
	ImageURL  string `gorm:"type:varchar(500);not null"`
	Posts     []Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// DefaultImageURL is stored for users created without a picture
func DefaultImageURL() string {
	return config.DEFAULT_IMAGE_URL
}
