package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost validates the owning user before inserting, so a bad user_id
// fails cleanly instead of surfacing a foreign key violation.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	exists, err := s.userRepo.ExistsByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewValidationError("User does not exist")
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, err
	}
	return post, nil
}

// GetUserPosts treats an empty result as not found, matching the endpoint
// contract of 404 when the user has no posts.
func (s *PostService) GetUserPosts(ctx context.Context, userID uint) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNotFoundError("No posts found for this user")
	}
	return posts, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	exists, err := s.postRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("Post not found")
	}
	return s.postRepo.Delete(ctx, id)
}
