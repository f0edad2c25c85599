package metricsController

import (
	"log"
	"sort"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardMetrics computes the dashboard summary, the 6-month engagement
// series and the per-department user distribution. Every call appends one
// snapshot to the metrics history.
func GetDashboardMetrics(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, activeUsers, totalCourses, activeCourses int64
	var totalEnrollments, completedEnrollments int64

	db.Model(&models.User{}).Count(&totalUsers)

	// Active users are those who logged in within the trailing 30 days
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	db.Model(&models.User{}).Where("last_login >= ?", thirtyDaysAgo).Count(&activeUsers)

	db.Model(&models.Course{}).Count(&totalCourses)
	db.Model(&models.Course{}).Where("status = ?", models.StatusActive).Count(&activeCourses)

	db.Model(&models.UserCourse{}).Count(&totalEnrollments)
	db.Model(&models.UserCourse{}).Where("completed = ?", true).Count(&completedEnrollments)

	completionRate := 0.0
	if totalEnrollments > 0 {
		completionRate = float64(completedEnrollments) / float64(totalEnrollments) * 100
	}

	var averageGrade float64
	db.Model(&models.UserCourse{}).Where("grade IS NOT NULL").
		Select("COALESCE(AVG(grade), 0)").Scan(&averageGrade)

	// Active users per calendar month, oldest to newest
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	userEngagement := make([]fiber.Map, 0, 6)
	for i := 5; i >= 0; i-- {
		start := firstOfMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		var monthlyActive int64
		db.Model(&models.User{}).Where("last_login >= ? AND last_login < ?", start, end).Count(&monthlyActive)

		userEngagement = append(userEngagement, fiber.Map{
			"month":       start.Month().String(),
			"year":        start.Year(),
			"activeUsers": monthlyActive,
		})
	}

	var departments []models.Department
	db.Order("name asc").Find(&departments)

	departmentDistribution := make([]fiber.Map, len(departments))
	for i, dept := range departments {
		var usersCount int64
		db.Model(&models.User{}).Where("department_id = ?", dept.ID).Count(&usersCount)
		departmentDistribution[i] = fiber.Map{
			"department": dept.Name,
			"users":      usersCount,
		}
	}

	// Append the snapshot to the metrics history
	snapshot := models.Metrics{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		TotalCourses:   totalCourses,
		ActiveCourses:  activeCourses,
		CompletionRate: completionRate,
		AverageGrade:   averageGrade,
	}
	if err := db.Create(&snapshot).Error; err != nil {
		log.Printf("Erro ao salvar snapshot de métricas: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"summary": fiber.Map{
			"totalUsers":     totalUsers,
			"activeUsers":    activeUsers,
			"totalCourses":   totalCourses,
			"activeCourses":  activeCourses,
			"completionRate": completionRate,
			"averageGrade":   averageGrade,
		},
		"userEngagement":         userEngagement,
		"departmentDistribution": departmentDistribution,
	})
}

// GetUserMetrics breaks users down by status, role and department, plus the
// top 10 users by completed courses
func GetUserMetrics(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, activeUsers, inactiveUsers, adminUsers, regularUsers int64

	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.User{}).Where("status = ?", models.StatusActive).Count(&activeUsers)
	db.Model(&models.User{}).Where("status = ?", models.StatusInactive).Count(&inactiveUsers)
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminUsers)
	db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&regularUsers)

	var departments []models.Department
	db.Order("name asc").Find(&departments)

	byDepartment := make([]fiber.Map, len(departments))
	for i, dept := range departments {
		var usersCount int64
		db.Model(&models.User{}).Where("department_id = ?", dept.ID).Count(&usersCount)
		byDepartment[i] = fiber.Map{
			"department": dept.Name,
			"users":      usersCount,
		}
	}

	var topUsers []models.User
	db.Preload("Department").Order("completed_courses desc").Limit(10).Find(&topUsers)

	top := make([]fiber.Map, len(topUsers))
	for i, user := range topUsers {
		entry := fiber.Map{
			"id":               user.ID,
			"name":             user.Name,
			"email":            user.Email,
			"completedCourses": user.CompletedCourses,
		}
		if user.Department != nil {
			entry["department"] = fiber.Map{"name": user.Department.Name}
		}
		top[i] = entry
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalUsers": totalUsers,
		"byStatus": fiber.Map{
			"active":   activeUsers,
			"inactive": inactiveUsers,
		},
		"byRole": fiber.Map{
			"admin": adminUsers,
			"user":  regularUsers,
		},
		"byDepartment": byDepartment,
		"topUsers":     top,
	})
}

type popularCourse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Enrollments int64  `json:"enrollments"`
}

type courseCompletion struct {
	ID                   uint    `json:"id"`
	Title                string  `json:"title"`
	TotalEnrollments     int     `json:"totalEnrollments"`
	CompletedEnrollments int     `json:"completedEnrollments"`
	CompletionRate       float64 `json:"completionRate"`
}

// GetCourseMetrics breaks courses down by status, the top 10 by enrollment
// count, and the top 10 by completion rate. The completion-rate ranking is
// computed in memory from the per-course enrollment sets.
func GetCourseMetrics(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses, activeCourses, inactiveCourses int64

	db.Model(&models.Course{}).Count(&totalCourses)
	db.Model(&models.Course{}).Where("status = ?", models.StatusActive).Count(&activeCourses)
	db.Model(&models.Course{}).Where("status = ?", models.StatusInactive).Count(&inactiveCourses)

	var popularCourses []popularCourse
	if err := db.Model(&models.Course{}).
		Select("courses.id, courses.title, courses.status, COUNT(user_courses.id) AS enrollments").
		Joins("LEFT JOIN user_courses ON user_courses.course_id = courses.id").
		Group("courses.id, courses.title, courses.status").
		Order("enrollments desc").
		Limit(10).
		Scan(&popularCourses).Error; err != nil {
		log.Printf("Erro ao obter cursos mais populares: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	var courses []models.Course
	db.Select("id, title").Find(&courses)

	var enrollments []models.UserCourse
	db.Select("course_id, completed").Find(&enrollments)

	totalByCourse := make(map[uint]int)
	completedByCourse := make(map[uint]int)
	for _, enrollment := range enrollments {
		totalByCourse[enrollment.CourseID]++
		if enrollment.Completed {
			completedByCourse[enrollment.CourseID]++
		}
	}

	topCompletionRate := make([]courseCompletion, len(courses))
	for i, course := range courses {
		total := totalByCourse[course.ID]
		completed := completedByCourse[course.ID]

		rate := 0.0
		if total > 0 {
			rate = float64(completed) / float64(total) * 100
		}

		topCompletionRate[i] = courseCompletion{
			ID:                   course.ID,
			Title:                course.Title,
			TotalEnrollments:     total,
			CompletedEnrollments: completed,
			CompletionRate:       rate,
		}
	}

	sort.SliceStable(topCompletionRate, func(i, j int) bool {
		return topCompletionRate[i].CompletionRate > topCompletionRate[j].CompletionRate
	})

	if len(topCompletionRate) > 10 {
		topCompletionRate = topCompletionRate[:10]
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalCourses": totalCourses,
		"byStatus": fiber.Map{
			"active":   activeCourses,
			"inactive": inactiveCourses,
		},
		"popularCourses":    popularCourses,
		"topCompletionRate": topCompletionRate,
	})
}

// GetDepartmentMetrics reports, per department, the user count, summed and
// average completed courses, and the 30-day active-user percentage
func GetDepartmentMetrics(c *fiber.Ctx) error {
	db := database.Database.Db

	var departments []models.Department
	if err := db.Order("name asc").Find(&departments).Error; err != nil {
		log.Printf("Erro ao listar departamentos: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	departmentMetrics := make([]fiber.Map, len(departments))
	for i, dept := range departments {
		var usersCount int64
		db.Model(&models.User{}).Where("department_id = ?", dept.ID).Count(&usersCount)

		var completedCoursesCount int64
		db.Model(&models.User{}).Where("department_id = ?", dept.ID).
			Select("COALESCE(SUM(completed_courses), 0)").Scan(&completedCoursesCount)

		avgCompletedCourses := 0.0
		if usersCount > 0 {
			avgCompletedCourses = float64(completedCoursesCount) / float64(usersCount)
		}

		var activeUsersCount int64
		db.Model(&models.User{}).
			Where("department_id = ? AND last_login >= ?", dept.ID, thirtyDaysAgo).
			Count(&activeUsersCount)

		activeUsersPercentage := 0.0
		if usersCount > 0 {
			activeUsersPercentage = float64(activeUsersCount) / float64(usersCount) * 100
		}

		departmentMetrics[i] = fiber.Map{
			"id":                    dept.ID,
			"name":                  dept.Name,
			"usersCount":            usersCount,
			"completedCoursesCount": completedCoursesCount,
			"avgCompletedCourses":   avgCompletedCourses,
			"activeUsersCount":      activeUsersCount,
			"activeUsersPercentage": activeUsersPercentage,
		}
	}

	return c.Status(fiber.StatusOK).JSON(departmentMetrics)
}
