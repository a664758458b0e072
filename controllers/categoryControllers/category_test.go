package categoryController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carhub/config"
	"carhub/database"
	"carhub/middleware"
	"carhub/models"
	categoryRoutes "carhub/routers/categoryRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	categoryRoutes.SetupCategoryRoutes(app)
	return app
}

func createUser(t *testing.T, name, email string, isAdmin bool) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hashed), IsAdmin: isAdmin}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.IsAdmin)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, database.Database.Db.Create(&category).Error)
	return category
}

func TestCreateCategory(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "Alice", "alice@example.com", false)

	resp, env := doRequest(t, app, http.MethodPost, "/api/categories", tokenFor(t, user), fiber.Map{
		"name": "Sedan",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Status)

	var count int64
	database.Database.Db.Model(&models.Category{}).Where("name = ?", "Sedan").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateCategoryValidatesNameLength(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "Alice", "alice@example.com", false)
	token := tokenFor(t, user)

	for _, name := range []string{"ab", strings.Repeat("a", 31)} {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/categories", token, fiber.Map{"name": name})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	var count int64
	database.Database.Db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetCategories(t *testing.T) {
	app := setupApp(t)
	seedCategory(t, "Sedan")
	seedCategory(t, "Hatchback")

	resp, env := doRequest(t, app, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 2)
}

func TestUpdateCategoryRequiresAdmin(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "Alice", "alice@example.com", false)
	category := seedCategory(t, "Sedan")

	resp, _ := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID), tokenFor(t, user), fiber.Map{
		"name": "Hatchback",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var unchanged models.Category
	require.NoError(t, database.Database.Db.First(&unchanged, category.ID).Error)
	assert.Equal(t, "Sedan", unchanged.Name)
}

func TestUpdateCategoryAsAdmin(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "Root", "root@example.com", true)
	category := seedCategory(t, "Sedan")

	resp, _ := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID), tokenFor(t, admin), fiber.Map{
		"name": "Hatchback",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Category
	require.NoError(t, database.Database.Db.First(&updated, category.ID).Error)
	assert.Equal(t, "Hatchback", updated.Name)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "Root", "root@example.com", true)

	resp, _ := doRequest(t, app, http.MethodPut, "/api/categories/9999", tokenFor(t, admin), fiber.Map{
		"name": "Hatchback",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCategoryRequiresAdmin(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "Alice", "alice@example.com", false)
	category := seedCategory(t, "Sedan")

	resp, _ := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), tokenFor(t, user), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCategoryAsAdmin(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "Root", "root@example.com", true)
	category := seedCategory(t, "Sedan")

	resp, env := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Category removed", env.Message)

	var count int64
	database.Database.Db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "Root", "root@example.com", true)

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/categories/9999", tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
