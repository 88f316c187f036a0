// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	UpdateText(ctx context.Context, id uint, text string) (*models.Comment, error)
	Delete(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("comments.*, users.username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateText sets the comment body and returns the updated row.
// An absent id yields gorm.ErrRecordNotFound.
func (r *commentRepository) UpdateText(ctx context.Context, id uint, text string) (*models.Comment, error) {
	var comment models.Comment
	res := r.db.WithContext(ctx).Raw(
		`UPDATE comments SET comment_text = ? WHERE id = ? RETURNING *`,
		text, id,
	).Scan(&comment)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

// Delete is idempotent: removing an absent comment is not an error.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}

// IncrementLikes bumps the comment's like counter unconditionally and
// returns the updated row. An absent id yields gorm.ErrRecordNotFound.
func (r *commentRepository) IncrementLikes(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	res := r.db.WithContext(ctx).Raw(
		`UPDATE comments SET comment_likes = comment_likes + 1 WHERE id = ? RETURNING *`,
		id,
	).Scan(&comment)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

// IsNotFound reports whether err is the record-not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
