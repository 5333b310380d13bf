package models

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	UserID    uint64    `gorm:"not null;index"`
	User      User
}

// CreatedAtString is what the post page shows
func (p Post) CreatedAtString() string {
	return p.CreatedAt.Local().Format("Mon Jan 2 2006, 3:04 PM")
}
