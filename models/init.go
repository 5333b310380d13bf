package models

import (
	"blogly/db"

	"gorm.io/gorm"
)

func Init() {
	if err := Migrate(db.Instance); err != nil {
		panic(err)
	}
}

// Migrate creates the users and posts tables, including the cascading posts.user_id foreign key
func Migrate(tx *gorm.DB) error {
	return tx.AutoMigrate(&User{}, &Post{})
}
