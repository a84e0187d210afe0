package stores

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/contoso/socialfeed/models"
)

// PostStore owns post rows. Every method re-reads from the shared database;
// no state survives between calls.
type PostStore struct {
	db      *gorm.DB
	clock   Clock
	ids     IDGenerator
	counter *AggregateCounter
}

// NewPostStore creates a PostStore over the shared database handle.
func NewPostStore(db *gorm.DB, clock Clock, ids IDGenerator, counter *AggregateCounter) *PostStore {
	return &PostStore{db: db, clock: clock, ids: ids, counter: counter}
}

// List returns all posts newest first, each with its current like and
// comment counts.
func (s *PostStore) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for i := range posts {
		if err := s.counter.Enrich(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// Create inserts a new post with a generated id and both timestamps set to now.
func (s *PostStore) Create(ctx context.Context, username, content string) (*models.Post, error) {
	now := s.clock.Now()
	post := models.Post{
		ID:        s.ids.NewID(),
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &post, nil
}

// Get returns the post with current counts, or ErrNotFound.
func (s *PostStore) Get(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	if err := s.counter.Enrich(ctx, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces the post content after checking the caller owns it.
// CreatedAt is left untouched; UpdatedAt moves to now.
func (s *PostStore) Update(ctx context.Context, id, username, content string) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post.Username != username {
		return nil, ErrOwnershipMismatch
	}

	now := s.clock.Now()
	err := s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).
		Updates(map[string]any{"content": content, "updated_at": now}).Error
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	post.Content = content
	post.UpdatedAt = now
	if err := s.counter.Enrich(ctx, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the post; the foreign keys cascade the delete to its
// comments and likes in the same statement. Returns ErrNotFound when no row
// matched.
func (s *PostStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// postExists reports whether a post row with the id is present. The comment
// and like stores use it for their parent checks.
func postExists(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check post: %w", err)
	}
	return n > 0, nil
}
