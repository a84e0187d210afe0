package stores

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/contoso/socialfeed/models"
)

// CommentStore owns comment rows, always scoped to a parent post.
type CommentStore struct {
	db    *gorm.DB
	clock Clock
	ids   IDGenerator
}

// NewCommentStore creates a CommentStore over the shared database handle.
func NewCommentStore(db *gorm.DB, clock Clock, ids IDGenerator) *CommentStore {
	return &CommentStore{db: db, clock: clock, ids: ids}
}

// List returns the post's comments oldest first, so a thread reads in
// chronological order. ErrNotFound when the post does not exist.
func (s *CommentStore) List(ctx context.Context, postID string) ([]models.Comment, error) {
	ok, err := postExists(ctx, s.db, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	var comments []models.Comment
	if err := s.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create inserts a new comment under an existing post.
func (s *CommentStore) Create(ctx context.Context, postID, username, content string) (*models.Comment, error) {
	ok, err := postExists(ctx, s.db, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	now := s.clock.Now()
	comment := models.Comment{
		ID:        s.ids.NewID(),
		PostID:    postID,
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &comment, nil
}

// Get returns the comment whose id and post id both match. A comment id from
// a different post is ErrNotFound, not a hit.
func (s *CommentStore) Get(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).First(&comment, "id = ? AND post_id = ?", commentID, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &comment, nil
}

// Update replaces the comment content after checking the caller owns it.
func (s *CommentStore) Update(ctx context.Context, postID, commentID, username, content string) (*models.Comment, error) {
	comment, err := s.Get(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.Username != username {
		return nil, ErrOwnershipMismatch
	}

	now := s.clock.Now()
	err = s.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ? AND post_id = ?", commentID, postID).
		Updates(map[string]any{"content": content, "updated_at": now}).Error
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	comment.Content = content
	comment.UpdatedAt = now
	return comment, nil
}

// Delete removes the comment under the same (id, post id) matching rule.
func (s *CommentStore) Delete(ctx context.Context, postID, commentID string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND post_id = ?", commentID, postID).Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
