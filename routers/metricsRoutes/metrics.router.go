package metricsRoutes

import (
	metricsControllers "lms/controllers/metrics"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMetricsRoutes(app *fiber.App) {
	metricsGroup := app.Group("/api/metrics", middleware.AuthMiddleware, middleware.AdminMiddleware)

	metricsGroup.Get("/dashboard", metricsControllers.GetDashboardMetrics)
	metricsGroup.Get("/users", metricsControllers.GetUserMetrics)
	metricsGroup.Get("/courses", metricsControllers.GetCourseMetrics)
	metricsGroup.Get("/departments", metricsControllers.GetDepartmentMetrics)
}
