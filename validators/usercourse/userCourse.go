package userCourseValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the validated payload for a new enrollment
type CreateRequest struct {
	UserID   uint `json:"userId" validate:"required"`
	CourseID uint `json:"courseId" validate:"required"`
}

// ProgressRequest is the validated payload for a progress update
type ProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100"`
}

// CompleteRequest is the validated payload for an explicit completion
type CompleteRequest struct {
	Grade *float64 `json:"grade" validate:"omitempty,min=0,max=10"`
}

var createMessages = map[string]string{
	"userId":   "ID do usuário é obrigatório",
	"courseId": "ID do curso é obrigatório",
}

var progressMessages = map[string]string{
	"progress": "Progresso deve ser um número inteiro entre 0 e 100",
}

var completeMessages = map[string]string{
	"grade": "Nota deve ser um número entre 0 e 10",
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

		c.Locals("createUserCourseRequest", reqData)
		return c.Next()
	}
}

// UpdateProgress validator middleware
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if errs := validators.Check(reqData, progressMessages); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("progressRequest", reqData)
		return c.Next()
	}
}

// Complete validator middleware
func Complete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if errs := validators.Check(reqData, completeMessages); errs != nil {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("completeRequest", reqData)
		return c.Next()
	}
}
