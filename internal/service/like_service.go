package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
}

type ToggleLikeInput struct {
	UserID uint
	PostID uint
}

func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

// LikePost activates the like for the pair, creating the row on first use
// and reactivating a previously unliked one.
func (s *LikeService) LikePost(ctx context.Context, in ToggleLikeInput) (*models.Like, error) {
	if in.UserID == 0 || in.PostID == 0 {
		return nil, models.NewValidationError("user_id and post_id are required")
	}
	return s.likeRepo.Toggle(ctx, in.UserID, in.PostID)
}

// UnlikePost is idempotent: unliking a pair with no active like succeeds.
func (s *LikeService) UnlikePost(ctx context.Context, userID, postID uint) error {
	if userID == 0 || postID == 0 {
		return models.NewValidationError("user_id and post_id are required")
	}
	return s.likeRepo.Deactivate(ctx, userID, postID)
}

func (s *LikeService) GetPostLikers(ctx context.Context, postID uint) ([]models.PostLiker, error) {
	return s.likeRepo.ActiveByPost(ctx, postID)
}
