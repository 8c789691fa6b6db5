package models

// Tag is a label that can be attached to any number of posts. Tag names are
// unique across the system. The post_tags join rows have no lifecycle of
// their own; they are created and removed only through tag assignment on a
// post.
type Tag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:varchar(50);not null;unique"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags;"`
}

func (Tag) TableName() string { return "tags" }
