package server

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/models"
	"ripple/internal/service"
)

// LikePost handles POST /likes. Liking creates the pair's row on first use
// and reactivates it after an unlike; re-liking an active pair is a no-op.
func (s *Server) LikePost(c *fiber.Ctx) error {
	var req struct {
		UserID uint `json:"user_id"`
		PostID uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	like, err := s.likeService.LikePost(c.Context(), service.ToggleLikeInput{
		UserID: req.UserID,
		PostID: req.PostID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(like)
}

// UnlikePost handles PUT /likes/:userId/:postId. Unliking a pair that holds
// no active like still succeeds.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.likeService.UnlikePost(c.Context(), userID, postID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post unliked successfully",
	})
}

// GetPostLikers handles GET /likes/post/:post_id
func (s *Server) GetPostLikers(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "post_id")
	if err != nil {
		return nil
	}

	likers, err := s.likeService.GetPostLikers(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(likers)
}
