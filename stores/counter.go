package stores

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/contoso/socialfeed/models"
)

// AggregateCounter derives like/comment totals for a post by counting the
// related rows at read time. The counts are separate queries from the post
// read itself, so under concurrent writes they may reflect a slightly
// different moment than the post row.
type AggregateCounter struct {
	db *gorm.DB
}

// NewAggregateCounter creates a counter over the shared database handle.
func NewAggregateCounter(db *gorm.DB) *AggregateCounter {
	return &AggregateCounter{db: db}
}

// CountLikes returns the number of stored likes for the post.
func (c *AggregateCounter) CountLikes(ctx context.Context, postID string) (int, error) {
	var n int64
	if err := c.db.WithContext(ctx).Model(&models.Like{}).Where("post_id = ?", postID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return int(n), nil
}

// CountComments returns the number of stored comments for the post.
func (c *AggregateCounter) CountComments(ctx context.Context, postID string) (int, error) {
	var n int64
	if err := c.db.WithContext(ctx).Model(&models.Comment{}).Where("post_id = ?", postID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return int(n), nil
}

// Enrich fills the derived count fields on the post in place.
func (c *AggregateCounter) Enrich(ctx context.Context, post *models.Post) error {
	likes, err := c.CountLikes(ctx, post.ID)
	if err != nil {
		return err
	}
	comments, err := c.CountComments(ctx, post.ID)
	if err != nil {
		return err
	}
	post.LikesCount = likes
	post.CommentsCount = comments
	return nil
}
