package userValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the validated payload for user creation
type CreateRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	DepartmentID uint   `json:"departmentId" validate:"required"`
	Role         string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// UpdateRequest is the validated payload for a partial user update
type UpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Email        *string `json:"email" validate:"omitempty,email"`
	DepartmentID *uint   `json:"departmentId" validate:"omitempty,min=1"`
	Role         *string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	Status       *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

var createMessages = map[string]string{
	"name":         "Nome é obrigatório",
	"email":        "Email inválido",
	"password":     "Senha deve ter pelo menos 6 caracteres",
	"departmentId": "Departamento é obrigatório",
	"role":         "Função inválida",
}

var updateMessages = map[string]string{
	"name":         "Nome não pode ser vazio",
	"email":        "Email inválido",
	"departmentId": "Departamento não pode ser vazio",
	"role":         "Função inválida",
	"status":       "Status inválido",
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if errs := validators.Check(reqData, createMessages); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("createUserRequest", reqData)
		return c.Next()
	}
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

		c.Locals("updateUserRequest", reqData)
		return c.Next()
	}
}
