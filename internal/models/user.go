// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an account that can author posts, likes, and comments.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// UsernameRow is the projection returned by username lookups and search.
type UsernameRow struct {
	Username string `json:"username"`
}
