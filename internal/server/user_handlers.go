package server

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/models"
	"ripple/internal/service"
)

// CreateUser handles POST /users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Username: req.Username,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUsername handles GET /users/:user_id. The body is a zero-or-one element
// array of usernames; an unknown id yields [] rather than 404.
func (s *Server) GetUsername(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "user_id")
	if err != nil {
		return nil
	}

	rows, err := s.userService.GetUsername(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(rows)
}

// SearchUsers handles GET /search?q=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	rows, err := s.userService.SearchUsers(c.Context(), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(rows)
}
