package middleware

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

// FieldError is one entry of the validation errors array
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse writes the standard failure envelope {message, code}
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
		"code":    statusCode,
	})
}

// ValidationErrorResponse writes the field-level errors collected by a validator
func ValidationErrorResponse(c *fiber.Ctx, errors []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": errors,
		"code":   fiber.StatusBadRequest,
	})
}

// PaginatedResponse writes the list envelope {data, pagination}
func PaginatedResponse(c *fiber.Ctx, data interface{}, total int64, page, limit int) error {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": data,
		"pagination": fiber.Map{
			"total": total,
			"pages": pages,
			"page":  page,
			"limit": limit,
		},
	})
}
