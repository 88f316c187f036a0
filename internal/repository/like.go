// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// LikeRepository persists the like soft-toggle state for (user, post) pairs.
// A pair's row is inserted once and only its active flag changes afterwards,
// preserving the full like history.
type LikeRepository interface {
	Toggle(ctx context.Context, userID, postID uint) (*models.Like, error)
	Deactivate(ctx context.Context, userID, postID uint) error
	ActiveByPost(ctx context.Context, postID uint) ([]models.PostLiker, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle activates the like for the pair, inserting the row on first use.
// The single INSERT ... ON CONFLICT statement is atomic: concurrent calls
// for the same pair cannot create a second row, and re-liking an already
// active pair returns the existing row unchanged.
func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (*models.Like, error) {
	defer observability.TrackQuery("upsert", "likes")()

	var like models.Like
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO likes (user_id, post_id, created_at, active)
		 VALUES (?, ?, CURRENT_TIMESTAMP, true)
		 ON CONFLICT (user_id, post_id) DO UPDATE SET active = true
		 RETURNING *`,
		userID, postID,
	).Scan(&like).Error
	if err != nil {
		return nil, err
	}

	middleware.LikeToggles.WithLabelValues("activate").Inc()
	cache.InvalidatePostLikers(ctx, postID)
	return &like, nil
}

// Deactivate flips the pair's row to inactive. Zero matched rows is still
// success: unliking a post that was never liked is a no-op.
func (r *likeRepository) Deactivate(ctx context.Context, userID, postID uint) error {
	defer observability.TrackQuery("update", "likes")()

	err := r.db.WithContext(ctx).Exec(
		`UPDATE likes SET active = false WHERE user_id = ? AND post_id = ? AND active = true`,
		userID, postID,
	).Error
	if err != nil {
		return err
	}

	middleware.LikeToggles.WithLabelValues("deactivate").Inc()
	cache.InvalidatePostLikers(ctx, postID)
	return nil
}

// ActiveByPost returns every user with an active like on the post, joined
// with their username. Served through the cache-aside helper; toggles
// invalidate the key.
func (r *likeRepository) ActiveByPost(ctx context.Context, postID uint) ([]models.PostLiker, error) {
	var likers []models.PostLiker
	key := cache.PostLikersKey(postID)

	err := cache.Aside(ctx, key, &likers, cache.PostLikersTTL, func() error {
		return r.db.WithContext(ctx).Raw(
			`SELECT users.username, users.id AS user_id, likes.id AS likes_id
			 FROM likes
			 INNER JOIN users ON likes.user_id = users.id
			 WHERE likes.post_id = ? AND likes.active = true`,
			postID,
		).Scan(&likers).Error
	})
	if err != nil {
		return nil, err
	}
	if likers == nil {
		likers = []models.PostLiker{}
	}
	return likers, nil
}
