// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"strings"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	GetUsernameByID(ctx context.Context, id uint) ([]models.UsernameRow, error)
	SearchByUsername(ctx context.Context, term string) ([]models.UsernameRow, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Username already taken")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUsername(ctx, user.ID)
	return nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUsernameByID returns a zero-or-one element slice; an absent user is not
// an error. Results are served through the cache-aside helper.
func (r *userRepository) GetUsernameByID(ctx context.Context, id uint) ([]models.UsernameRow, error) {
	var rows []models.UsernameRow
	key := cache.UsernameKey(id)

	err := cache.Aside(ctx, key, &rows, cache.UsernameTTL, func() error {
		return r.db.WithContext(ctx).
			Model(&models.User{}).
			Select("username").
			Where("id = ?", id).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.UsernameRow{}
	}
	return rows, nil
}

// SearchByUsername matches the term as a case-insensitive contiguous
// substring anywhere in the username.
func (r *userRepository) SearchByUsername(ctx context.Context, term string) ([]models.UsernameRow, error) {
	var rows []models.UsernameRow
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("username").
		Where("username ILIKE ?", "%"+term+"%").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.UsernameRow{}
	}
	return rows, nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
