package systemConfigController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	systemConfigRoutes "lms/routers/systemConfigRoutes"

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
	systemConfigRoutes.SetupSystemConfigRoutes(app)
	return app
}

func createUserWithRole(t *testing.T, role string) string {
	t.Helper()

	department := models.Department{Name: "Administração " + t.Name()}
	require.NoError(t, database.Database.Db.Create(&department).Error)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:         "Usuário",
		Email:        role + "@lms.local",
		Password:     string(hashed),
		Role:         role,
		Status:       models.StatusActive,
		DepartmentID: department.ID,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)
	return token
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

func TestGetSystemConfigCreatesDefaults(t *testing.T) {
	app := setupApp(t)
	adminToken := createUserWithRole(t, models.RoleAdmin)

	resp := doRequest(t, app, http.MethodGet, "/api/system-config", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["autoRegister"])
	assert.Equal(t, true, body["manualApproval"])
	assert.Equal(t, float64(30), body["inactivityBlockDays"])
	assert.Equal(t, false, body["inactivityBlockEnabled"])
	assert.Equal(t, float64(2000), body["userLimit"])
	assert.Equal(t, true, body["userLimitEnabled"])

	// The record stays a singleton across calls
	resp = doRequest(t, app, http.MethodGet, "/api/system-config", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.SystemConfig{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateSystemConfigPartial(t *testing.T) {
	app := setupApp(t)
	adminToken := createUserWithRole(t, models.RoleAdmin)

	resp := doRequest(t, app, http.MethodPut, "/api/system-config", adminToken, fiber.Map{
		"inactivityBlockEnabled": true,
		"inactivityBlockDays":    60,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["inactivityBlockEnabled"])
	assert.Equal(t, float64(60), body["inactivityBlockDays"])

	// Untouched fields keep their defaults
	assert.Equal(t, true, body["manualApproval"])
	assert.Equal(t, float64(2000), body["userLimit"])
}

func TestSystemConfigRequiresAdmin(t *testing.T) {
	app := setupApp(t)
	userToken := createUserWithRole(t, models.RoleUser)

	resp := doRequest(t, app, http.MethodGet, "/api/system-config", userToken, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Acesso restrito a administradores", body["message"])
}
