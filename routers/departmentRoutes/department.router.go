package departmentRoutes

import (
	departmentControllers "lms/controllers/department"
	"lms/middleware"
	departmentValidators "lms/validators/department"

	"github.com/gofiber/fiber/v2"
)

func SetupDepartmentRoutes(app *fiber.App) {
	departmentGroup := app.Group("/api/departments", middleware.AuthMiddleware)

	departmentGroup.Get("/", departmentControllers.GetAllDepartments)
	departmentGroup.Get("/:id", departmentControllers.GetDepartmentById)
	departmentGroup.Get("/:id/users", departmentControllers.GetDepartmentUsers)

	// Admin only
	departmentGroup.Post("/", middleware.AdminMiddleware, departmentValidators.Create(), departmentControllers.CreateDepartment)
	departmentGroup.Put("/:id", middleware.AdminMiddleware, departmentValidators.Update(), departmentControllers.UpdateDepartment)
	departmentGroup.Delete("/:id", middleware.AdminMiddleware, departmentControllers.DeleteDepartment)
}
