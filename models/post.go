package models

import "time"

// Post is a feed entry authored by a username. The author and creation time
// never change after insert; only Content and UpdatedAt are mutable.
type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"size:50;not null" json:"username"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`

	// Computed from the likes/comments tables on every read, never stored.
	LikesCount    int `gorm:"-" json:"likesCount"`
	CommentsCount int `gorm:"-" json:"commentsCount"`

	Comments []Comment `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Likes    []Like    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
