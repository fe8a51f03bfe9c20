// Package middleware implements the authorization gate applied in front
// of protected routes.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rdmitr/portfolio-cms/internal/models"
	"github.com/rdmitr/portfolio-cms/internal/services"
)

// Locals keys under which the gate stores the decoded claims.
const (
	LocalsClaims = "claims"
	LocalsUserID = "user_id"
	LocalsRole   = "role"
)

// Protected admits any request carrying a valid, unexpired token.
func Protected(secret string) fiber.Handler {
	return requireRole(secret, nil)
}

// AdminOnly admits only tokens whose role claim is Administrator.
func AdminOnly(secret string) fiber.Handler {
	admin := models.RoleAdministrator
	return requireRole(secret, &admin)
}

func requireRole(secret string, required *models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token format"})
		}

		claims, err := services.ParseToken(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		if required != nil && claims.Role != *required {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied."})
		}

		c.Locals(LocalsClaims, claims)
		c.Locals(LocalsUserID, claims.ID)
		c.Locals(LocalsRole, claims.Role)
		return c.Next()
	}
}
