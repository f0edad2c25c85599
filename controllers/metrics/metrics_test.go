package metricsController_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	metricsRoutes "lms/routers/metricsRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	metricsRoutes.SetupMetricsRoutes(app)
	return app
}

func createUser(t *testing.T, email, role string, departmentID uint, lastLogin *time.Time, completedCourses int) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:             "Usuário " + email,
		Email:            email,
		Password:         string(hashed),
		Role:             role,
		Status:           models.StatusActive,
		DepartmentID:     departmentID,
		LastLogin:        lastLogin,
		CompletedCourses: completedCourses,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func doGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func seedFixture(t *testing.T) string {
	t.Helper()

	db := database.Database.Db

	engineering := models.Department{Name: "Engenharia"}
	require.NoError(t, db.Create(&engineering).Error)
	sales := models.Department{Name: "Vendas"}
	require.NoError(t, db.Create(&sales).Error)

	now := time.Now()
	old := now.AddDate(0, 0, -45)

	admin := createUser(t, "admin@lms.local", models.RoleAdmin, engineering.ID, &now, 0)
	createUser(t, "ativa@lms.local", models.RoleUser, engineering.ID, &now, 2)
	createUser(t, "antiga@lms.local", models.RoleUser, sales.ID, &old, 1)

	golang := models.Course{Title: "Go Básico", Status: models.StatusActive}
	require.NoError(t, db.Create(&golang).Error)
	sql := models.Course{Title: "SQL", Status: models.StatusInactive}
	require.NoError(t, db.Create(&sql).Error)

	grade := 8.0
	require.NoError(t, db.Create(&models.UserCourse{
		UserID: admin.ID, CourseID: golang.ID, Progress: 100, Completed: true,
		Grade: &grade, StartDate: old, EndDate: &now,
	}).Error)
	require.NoError(t, db.Create(&models.UserCourse{
		UserID: admin.ID, CourseID: sql.ID, Progress: 20, StartDate: now,
	}).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.Role)
	require.NoError(t, err)
	return token
}

func TestGetDashboardMetrics(t *testing.T) {
	app := setupApp(t)
	adminToken := seedFixture(t)

	resp := doGet(t, app, "/api/metrics/dashboard", adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, float64(3), summary["totalUsers"])
	assert.Equal(t, float64(2), summary["activeUsers"])
	assert.Equal(t, float64(2), summary["totalCourses"])
	assert.Equal(t, float64(1), summary["activeCourses"])
	assert.Equal(t, float64(50), summary["completionRate"])
	assert.Equal(t, float64(8), summary["averageGrade"])

	engagement := body["userEngagement"].([]interface{})
	require.Len(t, engagement, 6)

	// Oldest to newest; the last bucket is the current month
	last := engagement[5].(map[string]interface{})
	assert.Equal(t, time.Now().Month().String(), last["month"])

	distribution := body["departmentDistribution"].([]interface{})
	require.Len(t, distribution, 2)
	assert.Equal(t, "Engenharia", distribution[0].(map[string]interface{})["department"])
	assert.Equal(t, float64(2), distribution[0].(map[string]interface{})["users"])
}

func TestGetDashboardMetricsAppendsSnapshot(t *testing.T) {
	app := setupApp(t)
	adminToken := seedFixture(t)

	resp := doGet(t, app, "/api/metrics/dashboard", adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Metrics{}).Count(&count)
	assert.Equal(t, int64(1), count)

	resp = doGet(t, app, "/api/metrics/dashboard", adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	database.Database.Db.Model(&models.Metrics{}).Count(&count)
	assert.Equal(t, int64(2), count)

	var snapshot models.Metrics
	require.NoError(t, database.Database.Db.Order("id desc").First(&snapshot).Error)
	assert.Equal(t, int64(3), snapshot.TotalUsers)
	assert.Equal(t, float64(50), snapshot.CompletionRate)
}

func TestGetUserMetrics(t *testing.T) {
	app := setupApp(t)
	adminToken := seedFixture(t)

	resp := doGet(t, app, "/api/metrics/users", adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(3), body["totalUsers"])

	byStatus := body["byStatus"].(map[string]interface{})
	assert.Equal(t, float64(3), byStatus["active"])
	assert.Equal(t, float64(0), byStatus["inactive"])

	byRole := body["byRole"].(map[string]interface{})
	assert.Equal(t, float64(1), byRole["admin"])
	assert.Equal(t, float64(2), byRole["user"])

	topUsers := body["topUsers"].([]interface{})
	require.NotEmpty(t, topUsers)
	first := topUsers[0].(map[string]interface{})
	assert.Equal(t, "ativa@lms.local", first["email"])
	assert.Equal(t, float64(2), first["completedCourses"])
}

func TestGetCourseMetrics(t *testing.T) {
	app := setupApp(t)
	adminToken := seedFixture(t)

	resp := doGet(t, app, "/api/metrics/courses", adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["totalCourses"])

	byStatus := body["byStatus"].(map[string]interface{})
	assert.Equal(t, float64(1), byStatus["active"])
	assert.Equal(t, float64(1), byStatus["inactive"])

	popular := body["popularCourses"].([]interface{})
	require.Len(t, popular, 2)

	completion := body["topCompletionRate"].([]interface{})
	require.Len(t, completion, 2)
	top := completion[0].(map[string]interface{})
	assert.Equal(t, "Go Básico", top["title"])
	assert.Equal(t, float64(100), top["completionRate"])
}

func TestGetDepartmentMetrics(t *testing.T) {
	app := setupApp(t)
	adminToken := seedFixture(t)

	resp := doGet(t, app, "/api/metrics/departments", adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var metrics []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&metrics))
	require.Len(t, metrics, 2)

	engineering := metrics[0]
	assert.Equal(t, "Engenharia", engineering["name"])
	assert.Equal(t, float64(2), engineering["usersCount"])
	assert.Equal(t, float64(2), engineering["completedCoursesCount"])
	assert.Equal(t, float64(1), engineering["avgCompletedCourses"])
	assert.Equal(t, float64(100), engineering["activeUsersPercentage"])

	sales := metrics[1]
	assert.Equal(t, "Vendas", sales["name"])
	assert.Equal(t, float64(0), sales["activeUsersPercentage"])
}

func TestMetricsRequireAdmin(t *testing.T) {
	app := setupApp(t)

	department := models.Department{Name: "Engenharia"}
	require.NoError(t, database.Database.Db.Create(&department).Error)
	user := createUser(t, "comum@lms.local", models.RoleUser, department.ID, nil, 0)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)

	resp := doGet(t, app, "/api/metrics/dashboard", token)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
