package models

// DefaultImageURL is stored when a user is submitted with a blank image URL.
const DefaultImageURL = "https://upload.wikimedia.org/wikipedia/commons/d/d9/Collage_of_Nine_Dogs.jpg"

// User represents a blog author
type User struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	FirstName string `json:"firstName" db:"first_name" gorm:"type:varchar(50);not null"`
	LastName  string `json:"lastName" db:"last_name" gorm:"type:varchar(50);not null"`
	ImageURL  string `json:"imageUrl" db:"image_url" gorm:"type:varchar(100);not null"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string { return "users" }

// FullName returns the display name used by the rendered pages.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
