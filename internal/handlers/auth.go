package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rdmitr/portfolio-cms/internal/services"
)

type Auth struct {
	auth *services.Auth
}

func NewAuth(auth *services.Auth) *Auth {
	return &Auth{auth: auth}
}

// Login exchanges email+password for a session token.
func (h *Auth) Login(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	token, user, err := h.auth.Login(c.Context(), request.Email, request.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"name":  user.Name,
		"role":  user.Role,
	})
}
