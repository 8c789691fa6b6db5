package database

import (
	"errors"
	"time"

	"github.com/nickmonteleone/blogly/models"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all posts ordered by id
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Order("id").Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its id with its author and tags preloaded.
// Returns (nil, nil) when no row matches.
func (r *PostRepo) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Tags").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post. The creation timestamp is assigned here rather
// than by a database-side default so it behaves the same on every backend.
func (r *PostRepo) Add(post *models.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	return r.db.Create(post).Error
}

// Update overwrites title and content. The creation timestamp and owning
// user are immutable and never touched.
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Model(&models.Post{ID: post.ID}).
		Select("title", "content").
		Updates(map[string]any{
			"title":   post.Title,
			"content": post.Content,
		}).Error
}

// Delete removes a post and its post_tags join rows.
func (r *PostRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// SetTags replaces the post's tag assignments. Join rows are created and
// removed only through this call; they have no lifecycle of their own.
func (r *PostRepo) SetTags(post *models.Post, tags []models.Tag) error {
	return r.db.Model(post).Association("Tags").Replace(&tags)
}
