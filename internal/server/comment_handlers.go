package server

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/models"
	"ripple/internal/service"
)

// CreateComment handles POST /comments/:post_id
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "post_id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID      uint   `json:"user_id"`
		CommentText string `json:"comment_text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		PostID:      postID,
		UserID:      req.UserID,
		CommentText: req.CommentText,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// GetComments handles GET /comments/:post_id
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "post_id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.GetPostComments(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return c.JSON(comments)
}

// UpdateComment handles PUT /comments/:comment_id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "comment_id")
	if err != nil {
		return nil
	}

	var req struct {
		CommentText string `json:"comment_text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), commentID, req.CommentText)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /comments/:comment_id. Deleting an absent
// comment still succeeds.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "comment_id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), commentID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}

// LikeComment handles POST /comments/like/:comment_id
func (s *Server) LikeComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "comment_id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.LikeComment(c.Context(), commentID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}
