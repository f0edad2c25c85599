package courseController

import (
	"log"
	"strings"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists courses with pagination and optional search and status
// filters, ordered by title
func GetAllCourses(c *fiber.Ctx) error {
	page, limit, offset := utils.Pagination(c)

	db := database.Database.Db.Model(&models.Course{})

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Order("title asc").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		log.Printf("Erro ao listar cursos: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return middleware.PaginatedResponse(c, courses, total, page, limit)
}

// GetCourseById returns a single course
func GetCourseById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ?", id).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	return c.Status(fiber.StatusOK).JSON(course)
}

// CreateCourse creates a course, defaulting to ACTIVE status
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("createCourseRequest").(*courseValidator.CreateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	status := reqData.Status
	if status == "" {
		status = models.StatusActive
	}

	newCourse := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      status,
	}

	if err := database.Database.Db.Create(&newCourse).Error; err != nil {
		log.Printf("Erro ao criar curso: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusCreated).JSON(newCourse)
}

// UpdateCourse applies a partial update
func UpdateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	reqData, ok := c.Locals("updateCourseRequest").(*courseValidator.UpdateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", id).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
	}

	if len(updates) > 0 {
		if err := db.Model(&course).Updates(updates).Error; err != nil {
			log.Printf("Erro ao atualizar curso: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
		}
	}

	return c.Status(fiber.StatusOK).JSON(course)
}

// DeleteCourse removes a course unless enrollments still reference it
func DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", id).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	var userCoursesCount int64
	db.Model(&models.UserCourse{}).Where("course_id = ?", id).Count(&userCoursesCount)

	if userCoursesCount > 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Não é possível excluir o curso pois existem usuários matriculados nele")
	}

	if err := db.Delete(&course).Error; err != nil {
		log.Printf("Erro ao excluir curso: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetCourseUsers lists the enrollments of one course with each user and its
// department, newest first
func GetCourseUsers(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	db := database.Database.Db

	if err := db.Where("id = ?", id).First(&models.Course{}).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	page, limit, offset := utils.Pagination(c)

	query := db.Model(&models.UserCourse{}).Where("course_id = ?", id)

	var total int64
	query.Count(&total)

	var userCourses []models.UserCourse
	if err := query.Preload("User.Department").Order("start_date desc").Offset(offset).Limit(limit).Find(&userCourses).Error; err != nil {
		log.Printf("Erro ao listar usuários do curso: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return middleware.PaginatedResponse(c, userCourses, total, page, limit)
}
