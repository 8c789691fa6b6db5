package database

import (
	"errors"

	"github.com/nickmonteleone/blogly/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns all users ordered by id
func (r *UserRepo) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

// FindByID returns a user by its id, with posts preloaded. Returns
// (nil, nil) when no row matches.
func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Posts", func(db *gorm.DB) *gorm.DB {
		return db.Order("posts.id")
	}).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Update overwrites the user's mutable fields. Every editable field is
// written wholesale on each edit; there are no partial updates.
func (r *UserRepo) Update(user *models.User) error {
	return r.db.Model(&models.User{ID: user.ID}).
		Select("first_name", "last_name", "image_url").
		Updates(map[string]any{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"image_url":  user.ImageURL,
		}).Error
}

// Delete removes a user and all posts owned by it. The cascade is explicit
// and runs in a single transaction: join rows first, then posts, then the
// user row itself.
func (r *UserRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM post_tags WHERE post_id IN (SELECT id FROM posts WHERE user_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
