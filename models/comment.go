package models

import "time"

// Comment is a reply scoped to its parent post. It is addressed by
// (PostID, ID) together; an id alone never resolves across posts.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PostID    string    `gorm:"size:36;index;not null" json:"postId"`
	Username  string    `gorm:"size:50;not null" json:"username"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}
