package userController

import (
	"log"
	"strings"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	userValidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetAllUsers lists users with pagination and optional search, department and
// status filters
func GetAllUsers(c *fiber.Ctx) error {
	page, limit, offset := utils.Pagination(c)

	db := database.Database.Db.Model(&models.User{})

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	if department := c.QueryInt("department"); department > 0 {
		db = db.Where("department_id = ?", department)
	}

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Preload("Department").Order("name asc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		log.Printf("Erro ao listar usuários: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return middleware.PaginatedResponse(c, users, total, page, limit)
}

// GetUserById returns a single user with its department
func GetUserById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	var user models.User
	if err := database.Database.Db.Preload("Department").Where("id = ?", id).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// CreateUser creates a user with a hashed password and ACTIVE status
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("createUserRequest").(*userValidator.CreateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	// Check if email is already in use
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email já está em uso")
	}

	var department models.Department
	if err := db.Where("id = ?", reqData.DepartmentID).First(&department).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Departamento não encontrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Erro ao gerar hash da senha: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	role := reqData.Role
	if role == "" {
		role = models.RoleUser
	}

	newUser := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		DepartmentID: reqData.DepartmentID,
		Role:         role,
		Status:       models.StatusActive,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Erro ao criar usuário: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	newUser.Department = &department

	return c.Status(fiber.StatusCreated).JSON(newUser)
}

// UpdateUser applies a partial update, re-checking email uniqueness and
// department existence only when those fields change
func UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	reqData, ok := c.Locals("updateUserRequest").(*userValidator.UpdateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	if reqData.Email != nil && *reqData.Email != user.Email {
		if err := db.Where("email = ?", *reqData.Email).First(&models.User{}).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email já está em uso")
		}
	}

	if reqData.DepartmentID != nil {
		if err := db.Where("id = ?", *reqData.DepartmentID).First(&models.Department{}).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Departamento não encontrado")
		}
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.DepartmentID != nil {
		updates["department_id"] = *reqData.DepartmentID
	}
	if reqData.Role != nil {
		updates["role"] = *reqData.Role
	}
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Erro ao atualizar usuário: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
		}
	}

	if err := db.Preload("Department").Where("id = ?", id).First(&user).Error; err != nil {
		log.Printf("Erro ao recarregar usuário: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser removes a user
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	if err := db.Delete(&user).Error; err != nil {
		log.Printf("Erro ao excluir usuário: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserCourses lists the enrollments of one user, newest first
func GetUserCourses(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	db := database.Database.Db

	if err := db.Where("id = ?", id).First(&models.User{}).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	page, limit, offset := utils.Pagination(c)

	query := db.Model(&models.UserCourse{}).Where("user_id = ?", id)

	var total int64
	query.Count(&total)

	var userCourses []models.UserCourse
	if err := query.Preload("Course").Order("start_date desc").Offset(offset).Limit(limit).Find(&userCourses).Error; err != nil {
		log.Printf("Erro ao listar cursos do usuário: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return middleware.PaginatedResponse(c, userCourses, total, page, limit)
}

// SearchUsers performs a case-insensitive search over name and email
func SearchUsers(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Termo de busca não fornecido")
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	term := "%" + strings.ToLower(q) + "%"

	var users []models.User
	if err := database.Database.Db.Preload("Department").
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term).
		Limit(limit).Find(&users).Error; err != nil {
		log.Printf("Erro ao buscar usuários: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusOK).JSON(users)
}
