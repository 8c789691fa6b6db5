package models

import "time"

// Post represents a blog post owned by a single user. CreatedAt is assigned
// by the repository at insert time and never changes afterwards; UserID is
// likewise immutable once the row exists.
type Post struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UserID    uint      `json:"userId" db:"user_id" gorm:"not null;index:idx_post_user"`

	User User  `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:post_tags;"`
}

func (Post) TableName() string { return "posts" }
