package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Repository is everything the web handlers need from storage
type Repository interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id uint64) (User, error)
	CreateUser(ctx context.Context, firstName, lastName, imageURL string) (User, error)
	UpdateUser(ctx context.Context, id uint64, firstName, lastName, imageURL string) (User, error)
	DeleteUser(ctx context.Context, id uint64) error

	CreatePost(ctx context.Context, userID uint64, title, content string) (Post, error)
	GetPost(ctx context.Context, id uint64) (Post, error)
	UpdatePost(ctx context.Context, id uint64, title, content string) (Post, error)
	DeletePost(ctx context.Context, id uint64) (Post, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func fail(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ListUsers returns all users by last name, then first name. Ties keep insertion order
func (r *GormRepository) ListUsers(ctx context.Context) ([]User, error) {
	const op = "models.ListUsers"
	users := []User{}
	if err := r.db.WithContext(ctx).Order("last_name, first_name, id").Find(&users).Error; err != nil {
		return nil, fail(op, err)
	}
	return users, nil
}

// GetUser loads the user together with their posts
func (r *GormRepository) GetUser(ctx context.Context, id uint64) (u User, err error) {
	const op = "models.GetUser"
	err = r.db.WithContext(ctx).
		Preload("Posts", func(tx *gorm.DB) *gorm.DB { return tx.Order("posts.id") }).
		First(&u, id).Error
	if err != nil {
		return User{}, fail(op, err)
	}
	return u, nil
}

// CreateUser stores the default picture when imageURL is empty
func (r *GormRepository) CreateUser(ctx context.Context, firstName, lastName, imageURL string) (User, error) {
	const op = "models.CreateUser"
	if imageURL == "" {
		imageURL = DefaultImageURL()
	}
	u := User{
		FirstName: firstName,
		LastName:  lastName,
		ImageURL:  imageURL,
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return User{}, fail(op, err)
	}
	return u, nil
}

// UpdateUser overwrites all fields as given. Unlike CreateUser an empty imageURL is kept empty
func (r *GormRepository) UpdateUser(ctx context.Context, id uint64, firstName, lastName, imageURL string) (u User, err error) {
	const op = "models.UpdateUser"
	tx := r.db.WithContext(ctx)
	if err = tx.First(&u, id).Error; err != nil {
		return User{}, fail(op, err)
	}
	err = tx.Model(&u).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"image_url":  imageURL,
	}).Error
	if err != nil {
		return User{}, fail(op, err)
	}
	u.FirstName, u.LastName, u.ImageURL = firstName, lastName, imageURL
	return u, nil
}

// DeleteUser relies on the posts.user_id foreign key to remove the user's posts
func (r *GormRepository) DeleteUser(ctx context.Context, id uint64) error {
	const op = "models.DeleteUser"
	result := r.db.WithContext(ctx).Delete(&User{}, id)
	if result.Error != nil {
		return fail(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return fail(op, ErrNotFound)
	}
	return nil
}

func (r *GormRepository) CreatePost(ctx context.Context, userID uint64, title, content string) (Post, error) {
	const op = "models.CreatePost"
	tx := r.db.WithContext(ctx)
	var count int64
	if err := tx.Model(&User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return Post{}, fail(op, err)
	}
	if count == 0 {
		return Post{}, fail(op, ErrNotFound)
	}
	p := Post{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := tx.Create(&p).Error; err != nil {
		return Post{}, fail(op, err)
	}
	return p, nil
}

// GetPost loads the post together with its author
func (r *GormRepository) GetPost(ctx context.Context, id uint64) (p Post, err error) {
	const op = "models.GetPost"
	if err = r.db.WithContext(ctx).Preload("User").First(&p, id).Error; err != nil {
		return Post{}, fail(op, err)
	}
	return p, nil
}

// UpdatePost changes title and content only, the owner stays the same
func (r *GormRepository) UpdatePost(ctx context.Context, id uint64, title, content string) (p Post, err error) {
	const op = "models.UpdatePost"
	tx := r.db.WithContext(ctx)
	if err = tx.First(&p, id).Error; err != nil {
		return Post{}, fail(op, err)
	}
	err = tx.Model(&p).Updates(map[string]interface{}{
		"title":   title,
		"content": content,
	}).Error
	if err != nil {
		return Post{}, fail(op, err)
	}
	p.Title, p.Content = title, content
	return p, nil
}

// DeletePost returns the removed post so callers know whose page to go back to
func (r *GormRepository) DeletePost(ctx context.Context, id uint64) (p Post, err error) {
	const op = "models.DeletePost"
	tx := r.db.WithContext(ctx)
	if err = tx.First(&p, id).Error; err != nil {
		return Post{}, fail(op, err)
	}
	if err = tx.Delete(&p).Error; err != nil {
		return Post{}, fail(op, err)
	}
	return p, nil
}
