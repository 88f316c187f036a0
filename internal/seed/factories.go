// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a generated username. A numeric suffix
// keeps generated usernames unique across large seed runs.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), f.rng.Intn(100000)),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// CreateUsers persists n generated users.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreatePost persists a post owned by the given user with a created_at
// spread over the past 90 days.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:     gofakeit.Sentence(4),
		Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
		UserID:    user.ID,
		CreatedAt: f.pastTime(90),
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// CreateLike persists a like row for the pair. Most seeded likes are active;
// a few inactive ones exercise the unliked state.
func (f *Factory) CreateLike(user *models.User, post *models.Post, active bool) (*models.Like, error) {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
		Active: active,
	}
	if err := f.db.Create(like).Error; err != nil {
		return nil, fmt.Errorf("seed like: %w", err)
	}
	return like, nil
}

// CreateComment persists a comment on the post by the given user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:       post.ID,
		UserID:       user.ID,
		CommentText:  gofakeit.Sentence(8),
		CommentLikes: f.rng.Intn(5),
		CreatedAt:    f.pastTime(30),
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("seed comment: %w", err)
	}
	return comment, nil
}

func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
