package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseRoutes "lms/routers/courseRoutes"

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
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createAdmin(t *testing.T) (models.User, string) {
	t.Helper()

	department := models.Department{Name: "Administração"}
	require.NoError(t, database.Database.Db.Create(&department).Error)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{
		Name:         "Admin",
		Email:        "admin@lms.local",
		Password:     string(hashed),
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
		DepartmentID: department.ID,
	}
	require.NoError(t, database.Database.Db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.Role)
	require.NoError(t, err)
	return admin, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

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

func TestCreateCourse(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createAdmin(t)

	resp := doRequest(t, app, http.MethodPost, "/api/courses", adminToken, fiber.Map{
		"title":       "Go Básico",
		"description": "Introdução à linguagem",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Go Básico", body["title"])
	assert.Equal(t, models.StatusActive, body["status"])
}

func TestCreateCourseValidation(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createAdmin(t)

	resp := doRequest(t, app, http.MethodPost, "/api/courses", adminToken, fiber.Map{
		"description": "sem título",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["errors"])
}

func TestGetAllCoursesStatusFilter(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createAdmin(t)

	require.NoError(t, database.Database.Db.Create(&models.Course{Title: "Ativo", Status: models.StatusActive}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Course{Title: "Inativo", Status: models.StatusInactive}).Error)

	resp := doRequest(t, app, http.MethodGet, "/api/courses?status=INACTIVE", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Inativo", data[0].(map[string]interface{})["title"])
}

func TestUpdateCoursePartial(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createAdmin(t)

	course := models.Course{Title: "Go Básico", Description: "v1", Status: models.StatusActive}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/courses/%d", course.ID), adminToken, fiber.Map{
		"status": models.StatusInactive,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, models.StatusInactive, body["status"])
	assert.Equal(t, "Go Básico", body["title"])
}

func TestDeleteCourseWithEnrollments(t *testing.T) {
	app := setupApp(t)
	admin, adminToken := createAdmin(t)

	course := models.Course{Title: "Go Básico", Status: models.StatusActive}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	require.NoError(t, database.Database.Db.Create(&models.UserCourse{
		UserID:    admin.ID,
		CourseID:  course.ID,
		StartDate: time.Now(),
	}).Error)

	resp := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/courses/%d", course.ID), adminToken, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Não é possível excluir o curso pois existem usuários matriculados nele", body["message"])
}

func TestDeleteCourseWithoutEnrollments(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createAdmin(t)

	course := models.Course{Title: "Descartável", Status: models.StatusActive}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/courses/%d", course.ID), adminToken, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Course{}).Where("id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetCourseUsers(t *testing.T) {
	app := setupApp(t)
	admin, adminToken := createAdmin(t)

	course := models.Course{Title: "Go Básico", Status: models.StatusActive}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	require.NoError(t, database.Database.Db.Create(&models.UserCourse{
		UserID:    admin.ID,
		CourseID:  course.ID,
		StartDate: time.Now(),
	}).Error)

	resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d/users", course.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)

	enrollment := data[0].(map[string]interface{})
	user := enrollment["user"].(map[string]interface{})
	assert.Equal(t, "admin@lms.local", user["email"])

	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestGetCourseByIdNotFound(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createAdmin(t)

	resp := doRequest(t, app, http.MethodGet, "/api/courses/9999", adminToken, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Curso não encontrado", body["message"])
}
