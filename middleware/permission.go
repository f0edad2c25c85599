package middleware

import (
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware restricts a route to users with the ADMIN role. It must run
// after AuthMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token de autenticação não fornecido")
	}

	if user.Role != models.RoleAdmin {
		return ErrorResponse(c, fiber.StatusForbidden, "Acesso restrito a administradores")
	}

	return c.Next()
}
