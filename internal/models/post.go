// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a post authored by a user.
// Views is a monotonically non-decreasing counter bumped on every fetch.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Views     int       `gorm:"not null;default:0" json:"views"`

	// Username is not persisted; populated by queries that join users.
	Username string `gorm:"->;-:migration" json:"username,omitempty"`
}
