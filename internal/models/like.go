package models

import "time"

// Like represents a user's like on a post. The (UserID, PostID) pair is
// unique: once a row exists it is only ever soft-toggled via Active,
// preserving the full like history. A row never returns to absent.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `gorm:"not null;default:false" json:"active"`
}

// PostLiker is the projection returned when listing active likers of a post.
type PostLiker struct {
	Username string `json:"username"`
	UserID   uint   `json:"user_id"`
	LikesID  uint   `json:"likes_id"`
}
