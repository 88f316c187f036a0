package server

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/models"
	"ripple/internal/service"
)

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		UserID  uint   `json:"user_id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// GetPost handles GET /posts/:id and counts the fetch as a view.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// GetUserPosts handles GET /posts/user/:user_id
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "user_id")
	if err != nil {
		return nil
	}

	posts, err := s.postService.GetUserPosts(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// DeletePost handles DELETE /posts/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), postID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
