package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ripple/internal/database"
	"ripple/internal/models"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestFactory_CreateUser(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.Username)

	named, err := f.CreateUser(func(u *models.User) {
		u.Username = "alice"
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", named.Username)
}

func TestFactory_CreatePost(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)

	post, err := f.CreatePost(user)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, user.ID, post.UserID)
	assert.NotEmpty(t, post.Title)
	assert.NotEmpty(t, post.Content)
	assert.Equal(t, 0, post.Views)
}

func TestFactory_CreateLike_UniquePair(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)
	post, err := f.CreatePost(user)
	require.NoError(t, err)

	like, err := f.CreateLike(user, post, true)
	require.NoError(t, err)
	assert.True(t, like.Active)

	// the composite unique index rejects a second row for the same pair
	_, err = f.CreateLike(user, post, false)
	require.Error(t, err)
}

func TestFactory_CreateComment(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)
	post, err := f.CreatePost(user)
	require.NoError(t, err)

	comment, err := f.CreateComment(user, post, func(c *models.Comment) {
		c.CommentText = "first!"
	})
	require.NoError(t, err)
	assert.Equal(t, "first!", comment.CommentText)
	assert.Equal(t, post.ID, comment.PostID)
}

func TestSeed(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 5, NumPosts: 10, ShouldClean: true}))

	var users, posts int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 5, users)
	assert.EqualValues(t, 10, posts)

	// reseeding with clean replaces rather than accumulates
	require.NoError(t, Seed(db, Options{NumUsers: 3, NumPosts: 4, ShouldClean: true}))
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 3, users)
}
