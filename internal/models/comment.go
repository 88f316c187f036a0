// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a comment on a post. CommentLikes is a monotonically
// non-decreasing counter bumped by the comment-like operation.
type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PostID       uint      `gorm:"not null;index" json:"post_id"`
	UserID       uint      `gorm:"not null" json:"user_id"`
	CommentText  string    `gorm:"type:text" json:"comment_text"`
	CreatedAt    time.Time `json:"created_at"`
	CommentLikes int       `gorm:"not null;default:0" json:"comment_likes"`

	// Username is not persisted; populated by queries that join users.
	Username string `gorm:"->;-:migration" json:"username,omitempty"`
}
