package userCourseController

import (
	"fmt"
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	userCourseValidator "lms/validators/usercourse"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllUserCourses lists enrollments with pagination and optional userId,
// courseId and completed filters, newest first
func GetAllUserCourses(c *fiber.Ctx) error {
	page, limit, offset := utils.Pagination(c)

	db := database.Database.Db.Model(&models.UserCourse{})

	if userID := c.QueryInt("userId"); userID > 0 {
		db = db.Where("user_id = ?", userID)
	}

	if courseID := c.QueryInt("courseId"); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}

	if completed := c.Query("completed"); completed != "" {
		db = db.Where("completed = ?", completed == "true")
	}

	var total int64
	db.Count(&total)

	var userCourses []models.UserCourse
	if err := db.Preload("User.Department").Preload("Course").
		Order("start_date desc").Offset(offset).Limit(limit).Find(&userCourses).Error; err != nil {
		log.Printf("Erro ao listar matrículas: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return middleware.PaginatedResponse(c, userCourses, total, page, limit)
}

// GetUserCourseById returns a single enrollment with user, department and course
func GetUserCourseById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}

	var userCourse models.UserCourse
	if err := database.Database.Db.Preload("User.Department").Preload("Course").
		Where("id = ?", id).First(&userCourse).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}

	return c.Status(fiber.StatusOK).JSON(userCourse)
}

// CreateUserCourse enrolls a user in a course. It rejects unknown users and
// courses, duplicate enrollments, and users whose active enrollment count has
// reached their department's simultaneous-course limit.
func CreateUserCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("createUserCourseRequest").(*userCourseValidator.CreateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Department").Where("id = ?", reqData.UserID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Usuário não encontrado")
	}

	var course models.Course
	if err := db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Curso não encontrado")
	}

	// Check if user is already enrolled
	if err := db.Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).
		First(&models.UserCourse{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Usuário já está matriculado neste curso")
	}

	// Enforce the department's simultaneous-course limit on active enrollments
	var activeCourses int64
	db.Model(&models.UserCourse{}).Where("user_id = ? AND completed = ?", reqData.UserID, false).Count(&activeCourses)

	if user.Department != nil && activeCourses >= int64(user.Department.SimultaneousCourses) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf(
			"Usuário atingiu o limite de %d cursos simultâneos permitidos para seu departamento",
			user.Department.SimultaneousCourses,
		))
	}

	newUserCourse := models.UserCourse{
		UserID:    reqData.UserID,
		CourseID:  reqData.CourseID,
		Progress:  0,
		Completed: false,
		StartDate: time.Now(),
	}

	if err := db.Create(&newUserCourse).Error; err != nil {
		log.Printf("Erro ao criar matrícula: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	newUserCourse.User = &user
	newUserCourse.Course = &course

	return c.Status(fiber.StatusCreated).JSON(newUserCourse)
}

// UpdateUserCourseProgress sets the progress of an enrollment. Reaching 100
// marks it completed with an end date; the owner's completed-course counter is
// incremented only on the transition into the completed state.
func UpdateUserCourseProgress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}

	reqData, ok := c.Locals("progressRequest").(*userCourseValidator.ProgressRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	var userCourse models.UserCourse
	if err := db.Where("id = ?", id).First(&userCourse).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}

	wasCompleted := userCourse.Completed
	progress := *reqData.Progress

	updates := map[string]interface{}{"progress": progress}
	if progress == 100 {
		updates["completed"] = true
		updates["end_date"] = time.Now()
	}

	if err := db.Model(&userCourse).Updates(updates).Error; err != nil {
		log.Printf("Erro ao atualizar progresso da matrícula: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	// Counter adjustment is edge-triggered on the transition into completed
	if progress == 100 && !wasCompleted {
		if err := db.Model(&models.User{}).Where("id = ?", userCourse.UserID).
			Update("completed_courses", gorm.Expr("completed_courses + ?", 1)).Error; err != nil {
			log.Printf("Erro ao atualizar contador de cursos concluídos: %v", err)
		}
	}

	if err := db.Preload("User.Department").Preload("Course").Where("id = ?", id).First(&userCourse).Error; err != nil {
		log.Printf("Erro ao recarregar matrícula: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusOK).JSON(userCourse)
}

// CompleteUserCourse forces an enrollment into the completed state with an
// optional grade. The counter increments only when the prior state was not
// completed.
func CompleteUserCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}

	reqData, ok := c.Locals("completeRequest").(*userCourseValidator.CompleteRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	var userCourse models.UserCourse
	if err := db.Where("id = ?", id).First(&userCourse).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}

	wasCompleted := userCourse.Completed

	updates := map[string]interface{}{
		"progress":  100,
		"completed": true,
		"end_date":  time.Now(),
	}
	if reqData.Grade != nil {
		updates["grade"] = *reqData.Grade
	}

	if err := db.Model(&userCourse).Updates(updates).Error; err != nil {
		log.Printf("Erro ao concluir matrícula: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	if !wasCompleted {
		if err := db.Model(&models.User{}).Where("id = ?", userCourse.UserID).
			Update("completed_courses", gorm.Expr("completed_courses + ?", 1)).Error; err != nil {
			log.Printf("Erro ao atualizar contador de cursos concluídos: %v", err)
		}
	}

	if err := db.Preload("User.Department").Preload("Course").Where("id = ?", id).First(&userCourse).Error; err != nil {
		log.Printf("Erro ao recarregar matrícula: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusOK).JSON(userCourse)
}

// DeleteUserCourse removes an enrollment, decrementing the owner's
// completed-course counter when the deleted enrollment was completed
func DeleteUserCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}

	db := database.Database.Db

	var userCourse models.UserCourse
	if err := db.Where("id = ?", id).First(&userCourse).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}

	if err := db.Delete(&userCourse).Error; err != nil {
		log.Printf("Erro ao excluir matrícula: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	if userCourse.Completed {
		if err := db.Model(&models.User{}).Where("id = ?", userCourse.UserID).
			Update("completed_courses", gorm.Expr("completed_courses - ?", 1)).Error; err != nil {
			log.Printf("Erro ao atualizar contador de cursos concluídos: %v", err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
