package authController

import (
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a user by email and password and issues a JWT. Unknown
// email and wrong password return the same message to avoid account
// enumeration.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("loginRequest").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	var user models.User
	if err := database.Database.Db.Preload("Department").Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	if user.Status == models.StatusInactive {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Conta inativa")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Erro ao gerar token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	// Update last login
	now := time.Now()
	if err := database.Database.Db.Model(&user).Update("last_login", now).Error; err != nil {
		log.Printf("Erro ao atualizar último login: %v", err)
	}
	user.LastLogin = &now

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated user resolved by the auth middleware
func Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.Status(fiber.StatusOK).JSON(user)
}

// RefreshToken issues a fresh token for the authenticated user
func RefreshToken(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Erro ao renovar token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}
