package departmentController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	departmentValidator "lms/validators/department"

	"github.com/gofiber/fiber/v2"
)

// GetAllDepartments lists every department ordered by name
func GetAllDepartments(c *fiber.Ctx) error {
	var departments []models.Department
	if err := database.Database.Db.Order("name asc").Find(&departments).Error; err != nil {
		log.Printf("Erro ao listar departamentos: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusOK).JSON(departments)
}

// GetDepartmentById returns a single department
func GetDepartmentById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	var department models.Department
	if err := database.Database.Db.Where("id = ?", id).First(&department).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	return c.Status(fiber.StatusOK).JSON(department)
}

// CreateDepartment creates a department with a unique name. Access flags
// default to true and the simultaneous-course limit to 5.
func CreateDepartment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("createDepartmentRequest").(*departmentValidator.CreateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	if err := db.Where("name = ?", reqData.Name).First(&models.Department{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Já existe um departamento com este nome")
	}

	newDepartment := models.Department{
		Name:                  reqData.Name,
		AccessAllCourses:      true,
		AccessAllTracks:       true,
		SimultaneousCourses:   5,
		CertificatePermission: true,
	}

	if reqData.AccessAllCourses != nil {
		newDepartment.AccessAllCourses = *reqData.AccessAllCourses
	}
	if reqData.AccessAllTracks != nil {
		newDepartment.AccessAllTracks = *reqData.AccessAllTracks
	}
	if reqData.SimultaneousCourses != nil {
		newDepartment.SimultaneousCourses = *reqData.SimultaneousCourses
	}
	if reqData.CertificatePermission != nil {
		newDepartment.CertificatePermission = *reqData.CertificatePermission
	}

	if err := db.Create(&newDepartment).Error; err != nil {
		log.Printf("Erro ao criar departamento: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusCreated).JSON(newDepartment)
}

// UpdateDepartment applies a partial update, re-checking name uniqueness only
// when the name changes
func UpdateDepartment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	reqData, ok := c.Locals("updateDepartmentRequest").(*departmentValidator.UpdateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	var department models.Department
	if err := db.Where("id = ?", id).First(&department).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	if reqData.Name != nil && *reqData.Name != department.Name {
		if err := db.Where("name = ?", *reqData.Name).First(&models.Department{}).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Já existe um departamento com este nome")
		}
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.AccessAllCourses != nil {
		updates["access_all_courses"] = *reqData.AccessAllCourses
	}
	if reqData.AccessAllTracks != nil {
		updates["access_all_tracks"] = *reqData.AccessAllTracks
	}
	if reqData.SimultaneousCourses != nil {
		updates["simultaneous_courses"] = *reqData.SimultaneousCourses
	}
	if reqData.CertificatePermission != nil {
		updates["certificate_permission"] = *reqData.CertificatePermission
	}

	if len(updates) > 0 {
		if err := db.Model(&department).Updates(updates).Error; err != nil {
			log.Printf("Erro ao atualizar departamento: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
		}
	}

	return c.Status(fiber.StatusOK).JSON(department)
}

// DeleteDepartment removes a department unless users still reference it
func DeleteDepartment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	db := database.Database.Db

	var department models.Department
	if err := db.Where("id = ?", id).First(&department).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	var usersCount int64
	db.Model(&models.User{}).Where("department_id = ?", id).Count(&usersCount)

	if usersCount > 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Não é possível excluir o departamento pois existem usuários associados a ele")
	}

	if err := db.Delete(&department).Error; err != nil {
		log.Printf("Erro ao excluir departamento: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetDepartmentUsers lists the users of one department, ordered by name
func GetDepartmentUsers(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	db := database.Database.Db

	if err := db.Where("id = ?", id).First(&models.Department{}).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	page, limit, offset := utils.Pagination(c)

	query := db.Model(&models.User{}).Where("department_id = ?", id)

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("name asc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		log.Printf("Erro ao listar usuários do departamento: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return middleware.PaginatedResponse(c, users, total, page, limit)
}
