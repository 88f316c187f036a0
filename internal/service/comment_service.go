package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type CreateCommentInput struct {
	PostID      uint
	UserID      uint
	CommentText string
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment does not verify the post or user exist; the row references
// them directly and the database constraints are the backstop.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}
	if in.CommentText == "" {
		return nil, models.NewValidationError("comment_text is required")
	}

	comment := &models.Comment{
		PostID:      in.PostID,
		UserID:      in.UserID,
		CommentText: in.CommentText,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetPostComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) UpdateComment(ctx context.Context, id uint, text string) (*models.Comment, error) {
	if text == "" {
		return nil, models.NewValidationError("comment_text is required")
	}
	comment, err := s.commentRepo.UpdateText(ctx, id, text)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}

// DeleteComment is idempotent: deleting an absent comment succeeds.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	return s.commentRepo.Delete(ctx, id)
}

func (s *CommentService) LikeComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.IncrementLikes(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}
