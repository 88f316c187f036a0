package server

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"

	"ripple/internal/models"
	"ripple/internal/service"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetUsernameByID(ctx context.Context, id uint) ([]models.UsernameRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UsernameRow), args.Error(1)
}

func (m *MockUserRepository) SearchByUsername(ctx context.Context, term string) ([]models.UsernameRow, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UsernameRow), args.Error(1)
}

// MockPostRepository is a testify mock for repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLikeRepository is a testify mock for repository.LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(ctx context.Context, userID, postID uint) (*models.Like, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeRepository) Deactivate(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockLikeRepository) ActiveByPost(ctx context.Context, postID uint) ([]models.PostLiker, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostLiker), args.Error(1)
}

// MockCommentRepository is a testify mock for repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateText(ctx context.Context, id uint, text string) (*models.Comment, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) IncrementLikes(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

// testDeps bundles the mocks a handler test wires a Server around.
type testDeps struct {
	users    *MockUserRepository
	posts    *MockPostRepository
	likes    *MockLikeRepository
	comments *MockCommentRepository
}

// newTestServer builds a Server over mock repositories and a routed Fiber app.
func newTestServer(t *testing.T) (*fiber.App, *Server, *testDeps) {
	t.Helper()

	deps := &testDeps{
		users:    new(MockUserRepository),
		posts:    new(MockPostRepository),
		likes:    new(MockLikeRepository),
		comments: new(MockCommentRepository),
	}

	s := &Server{
		userRepo:    deps.users,
		postRepo:    deps.posts,
		likeRepo:    deps.likes,
		commentRepo: deps.comments,
	}
	s.userService = service.NewUserService(deps.users)
	s.postService = service.NewPostService(deps.posts, deps.users)
	s.likeService = service.NewLikeService(deps.likes)
	s.commentService = service.NewCommentService(deps.comments)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s, deps
}
