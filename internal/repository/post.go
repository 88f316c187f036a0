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

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Post, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID fetches a post and bumps its view counter in the same transaction.
// The returned row carries the view count as it was before the increment,
// so two consecutive fetches observe views values exactly one apart.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()

	var post models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	middleware.PostViews.Inc()
	return &post, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*, users.username").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the post and its like rows in one transaction. Likes hold a
// foreign key to posts, so they must go first.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "posts")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return err
	}

	cache.InvalidatePostLikers(ctx, id)
	return nil
}
