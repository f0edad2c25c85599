package courseValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the validated payload for course creation
type CreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateRequest is the validated payload for a partial course update
type UpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

var createMessages = map[string]string{
	"title":  "Título é obrigatório",
	"status": "Status inválido",
}

var updateMessages = map[string]string{
	"title":  "Título não pode ser vazio",
	"status": "Status inválido",
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

		c.Locals("createCourseRequest", reqData)
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

		c.Locals("updateCourseRequest", reqData)
		return c.Next()
	}
}
