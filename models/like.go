package models

import "time"

// Like records that a username liked a post. The composite primary key keeps
// it to one row per (post, username); LikedAt is written once and kept.
type Like struct {
	PostID   string    `gorm:"primaryKey;size:36" json:"postId"`
	Username string    `gorm:"primaryKey;size:50" json:"username"`
	LikedAt  time.Time `gorm:"not null;autoCreateTime:false" json:"likedAt"`
}
