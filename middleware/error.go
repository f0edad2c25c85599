package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorHandler is the centralized fiber error handler. Datastore failures map
// to 400 with their driver message as details; everything else surfaces as a
// generic 500 without internal detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	log.Printf("Erro: %v", err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Erro de banco de dados",
			"code":    fiber.StatusBadRequest,
			"details": pgErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse(c, fiberErr.Code, fiberErr.Message)
	}

	return ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
}
