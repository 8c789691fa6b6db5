package database

import (
	"errors"

	"github.com/nickmonteleone/blogly/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags ordered by name
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name").Find(&tags).Error
	return tags, err
}

// FindByName returns a tag by its unique name, or (nil, nil) when absent.
func (r *TagRepo) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Add inserts a new tag. Fails with a uniqueness violation if the name is
// already taken.
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}
