package authValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// LoginRequest is the validated login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"email":    "Email inválido",
	"password": "Senha é obrigatória",
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if errs := validators.Check(reqData, loginMessages); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("loginRequest", reqData)
		return c.Next()
	}
}
