package userCourseRoutes

import (
	userCourseControllers "lms/controllers/usercourse"
	"lms/middleware"
	userCourseValidators "lms/validators/usercourse"

	"github.com/gofiber/fiber/v2"
)

func SetupUserCourseRoutes(app *fiber.App) {
	userCourseGroup := app.Group("/api/user-courses", middleware.AuthMiddleware)

	userCourseGroup.Get("/", userCourseControllers.GetAllUserCourses)
	userCourseGroup.Get("/:id", userCourseControllers.GetUserCourseById)
	userCourseGroup.Put("/:id/progress", userCourseValidators.UpdateProgress(), userCourseControllers.UpdateUserCourseProgress)
	userCourseGroup.Put("/:id/complete", userCourseValidators.Complete(), userCourseControllers.CompleteUserCourse)

	// Admin only
	userCourseGroup.Post("/", middleware.AdminMiddleware, userCourseValidators.Create(), userCourseControllers.CreateUserCourse)
	userCourseGroup.Delete("/:id", middleware.AdminMiddleware, userCourseControllers.DeleteUserCourse)
}
