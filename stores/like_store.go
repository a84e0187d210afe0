package stores

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/contoso/socialfeed/models"
)

// LikeStore owns the like relation between posts and usernames.
type LikeStore struct {
	db    *gorm.DB
	clock Clock
}

// NewLikeStore creates a LikeStore over the shared database handle.
func NewLikeStore(db *gorm.DB, clock Clock) *LikeStore {
	return &LikeStore{db: db, clock: clock}
}

// Like records that username liked the post. A repeat like is a no-op for
// stored state: the insert is dropped on conflict and the original liked_at
// row survives. The returned Like always carries this call's timestamp, which
// can therefore differ from what is persisted for a repeat.
func (s *LikeStore) Like(ctx context.Context, postID, username string) (*models.Like, error) {
	ok, err := postExists(ctx, s.db, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	like := models.Like{
		PostID:   postID,
		Username: username,
		LikedAt:  s.clock.Now(),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "username"}},
		DoNothing: true,
	}).Create(&like).Error
	if err != nil {
		return nil, fmt.Errorf("like post: %w", err)
	}
	return &like, nil
}

// Unlike removes username's like for the post, succeeding even when no such
// like exists. With an empty username it removes every like for the post.
// ErrNotFound when the post itself does not exist.
func (s *LikeStore) Unlike(ctx context.Context, postID, username string) error {
	ok, err := postExists(ctx, s.db, postID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	q := s.db.WithContext(ctx).Where("post_id = ?", postID)
	if username != "" {
		q = q.Where("username = ?", username)
	}
	if err := q.Delete(&models.Like{}).Error; err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	return nil
}
