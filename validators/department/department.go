package departmentValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the validated payload for department creation. The flag
// fields default to true when omitted, matching the API contract.
type CreateRequest struct {
	Name                  string `json:"name" validate:"required"`
	AccessAllCourses      *bool  `json:"accessAllCourses"`
	AccessAllTracks       *bool  `json:"accessAllTracks"`
	SimultaneousCourses   *int   `json:"simultaneousCourses" validate:"omitempty,min=1"`
	CertificatePermission *bool  `json:"certificatePermission"`
}

// UpdateRequest is the validated payload for a partial department update
type UpdateRequest struct {
	Name                  *string `json:"name" validate:"omitempty,min=1"`
	AccessAllCourses      *bool   `json:"accessAllCourses"`
	AccessAllTracks       *bool   `json:"accessAllTracks"`
	SimultaneousCourses   *int    `json:"simultaneousCourses" validate:"omitempty,min=1"`
	CertificatePermission *bool   `json:"certificatePermission"`
}

var createMessages = map[string]string{
	"name":                "Nome é obrigatório",
	"simultaneousCourses": "Limite de cursos simultâneos deve ser um número inteiro positivo",
}

var updateMessages = map[string]string{
	"name":                "Nome não pode ser vazio",
	"simultaneousCourses": "Limite de cursos simultâneos deve ser um número inteiro positivo",
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

		c.Locals("createDepartmentRequest", reqData)
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

		c.Locals("updateDepartmentRequest", reqData)
		return c.Next()
	}
}
