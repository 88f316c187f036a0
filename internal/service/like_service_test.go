package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ripple/internal/models"
)

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	toggleFn       func(context.Context, uint, uint) (*models.Like, error)
	deactivateFn   func(context.Context, uint, uint) error
	activeByPostFn func(context.Context, uint) ([]models.PostLiker, error)
}

func (s *likeRepoStub) Toggle(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.toggleFn(ctx, userID, postID)
}
func (s *likeRepoStub) Deactivate(ctx context.Context, userID, postID uint) error {
	return s.deactivateFn(ctx, userID, postID)
}
func (s *likeRepoStub) ActiveByPost(ctx context.Context, postID uint) ([]models.PostLiker, error) {
	return s.activeByPostFn(ctx, postID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		toggleFn: func(_ context.Context, userID, postID uint) (*models.Like, error) {
			return &models.Like{ID: 1, UserID: userID, PostID: postID, Active: true}, nil
		},
		deactivateFn: func(_ context.Context, _, _ uint) error { return nil },
		activeByPostFn: func(_ context.Context, _ uint) ([]models.PostLiker, error) {
			return []models.PostLiker{}, nil
		},
	}
}

func TestLikeService_LikePost(t *testing.T) {
	ctx := context.Background()

	t.Run("TogglesPair", func(t *testing.T) {
		svc := NewLikeService(noopLikeRepo())

		like, err := svc.LikePost(ctx, ToggleLikeInput{UserID: 1, PostID: 3})
		require.NoError(t, err)
		assert.True(t, like.Active)
		assert.Equal(t, uint(1), like.UserID)
		assert.Equal(t, uint(3), like.PostID)
	})

	t.Run("ZeroIDsRejected", func(t *testing.T) {
		svc := NewLikeService(noopLikeRepo())

		_, err := svc.LikePost(ctx, ToggleLikeInput{UserID: 0, PostID: 3})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestLikeService_UnlikePost(t *testing.T) {
	ctx := context.Background()

	t.Run("IdempotentSuccess", func(t *testing.T) {
		svc := NewLikeService(noopLikeRepo())
		require.NoError(t, svc.UnlikePost(ctx, 1, 99))
	})

	t.Run("ZeroIDsRejected", func(t *testing.T) {
		svc := NewLikeService(noopLikeRepo())
		require.Error(t, svc.UnlikePost(ctx, 1, 0))
	})
}

func TestLikeService_GetPostLikers(t *testing.T) {
	ctx := context.Background()

	repo := noopLikeRepo()
	repo.activeByPostFn = func(_ context.Context, postID uint) ([]models.PostLiker, error) {
		if postID == 3 {
			return []models.PostLiker{{Username: "alice", UserID: 1, LikesID: 10}}, nil
		}
		return []models.PostLiker{}, nil
	}
	svc := NewLikeService(repo)

	likers, err := svc.GetPostLikers(ctx, 3)
	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, "alice", likers[0].Username)

	likers, err = svc.GetPostLikers(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, likers)
}
