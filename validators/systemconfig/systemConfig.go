package systemConfigValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// UpdateRequest is the validated payload for a partial system config update
type UpdateRequest struct {
	AutoRegister           *bool `json:"autoRegister"`
	ManualApproval         *bool `json:"manualApproval"`
	InactivityBlockDays    *int  `json:"inactivityBlockDays" validate:"omitempty,min=1"`
	InactivityBlockEnabled *bool `json:"inactivityBlockEnabled"`
	UserLimit              *int  `json:"userLimit" validate:"omitempty,min=1"`
	UserLimitEnabled       *bool `json:"userLimitEnabled"`
}

var updateMessages = map[string]string{
	"inactivityBlockDays": "Dias de inatividade deve ser um número inteiro positivo",
	"userLimit":           "Limite de usuários deve ser um número inteiro positivo",
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if errs := validators.Check(reqData, updateMessages); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("updateSystemConfigRequest", reqData)
		return c.Next()
	}
}
