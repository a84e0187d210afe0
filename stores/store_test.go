package stores

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/contoso/socialfeed/models"
)

// fakeClock hands out a pinned instant that tests advance explicitly.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// seqIDs generates predictable ids.
type seqIDs struct {
	n int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Comment{}, &models.Like{}))
	return db
}

type testStores struct {
	posts    *PostStore
	comments *CommentStore
	likes    *LikeStore
	counter  *AggregateCounter
	clock    *fakeClock
	db       *gorm.DB
}

func newTestStores(t *testing.T) *testStores {
	t.Helper()

	db := newTestDB(t)
	clock := newFakeClock()
	ids := &seqIDs{}
	counter := NewAggregateCounter(db)
	return &testStores{
		posts:    NewPostStore(db, clock, ids, counter),
		comments: NewCommentStore(db, clock, ids),
		likes:    NewLikeStore(db, clock),
		counter:  counter,
		clock:    clock,
		db:       db,
	}
}
