package database

import (
	"github.com/nickmonteleone/blogly/models"
	"gorm.io/gorm"
)

type Database struct {
	db       *gorm.DB
	userRepo *UserRepo
	postRepo *PostRepo
	tagRepo  *TagRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:       db,
		userRepo: NewUserRepo(db),
		postRepo: NewPostRepo(db),
		tagRepo:  NewTagRepo(db),
	}
}

// AutoMigrate creates or updates the schema for every model, including the
// post_tags join table implied by the many-to-many between posts and tags.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Post{}, &models.Tag{})
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

// Ping verifies the underlying connection is still usable.
func (d Database) Ping() error {
	var one int
	return d.db.Raw("SELECT 1").Scan(&one).Error
}
