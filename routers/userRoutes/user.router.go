package userRoutes

import (
	userControllers "lms/controllers/user"
	"lms/middleware"
	userValidators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users", middleware.AuthMiddleware)

	userGroup.Get("/", userControllers.GetAllUsers)
	userGroup.Get("/search", userControllers.SearchUsers)
	userGroup.Get("/:id", userControllers.GetUserById)
	userGroup.Get("/:id/courses", userControllers.GetUserCourses)

	// Admin only
	userGroup.Post("/", middleware.AdminMiddleware, userValidators.Create(), userControllers.CreateUser)
	userGroup.Put("/:id", middleware.AdminMiddleware, userValidators.Update(), userControllers.UpdateUser)
	userGroup.Delete("/:id", middleware.AdminMiddleware, userControllers.DeleteUser)
}
