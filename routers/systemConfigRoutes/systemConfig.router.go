package systemConfigRoutes

import (
	systemConfigControllers "lms/controllers/systemconfig"
	"lms/middleware"
	systemConfigValidators "lms/validators/systemconfig"

	"github.com/gofiber/fiber/v2"
)

func SetupSystemConfigRoutes(app *fiber.App) {
	configGroup := app.Group("/api/system-config", middleware.AuthMiddleware, middleware.AdminMiddleware)

	configGroup.Get("/", systemConfigControllers.GetSystemConfig)
	configGroup.Put("/", systemConfigValidators.Update(), systemConfigControllers.UpdateSystemConfig)
}
