package courseRoutes

import (
	courseControllers "lms/controllers/course"
	"lms/middleware"
	courseValidators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses", middleware.AuthMiddleware)

	courseGroup.Get("/", courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseControllers.GetCourseById)
	courseGroup.Get("/:id/users", courseControllers.GetCourseUsers)

	// Admin only
	courseGroup.Post("/", middleware.AdminMiddleware, courseValidators.Create(), courseControllers.CreateCourse)
	courseGroup.Put("/:id", middleware.AdminMiddleware, courseValidators.Update(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.AdminMiddleware, courseControllers.DeleteCourse)
}
