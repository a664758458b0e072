package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carhub/config"
	"carhub/database"
	"carhub/models"
	userRoutes "carhub/routers/userRoutes"

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

type authData struct {
	User  map[string]interface{} `json:"user"`
	Token string                 `json:"token"`
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
	userRoutes.SetupUserRoutes(app)
	return app
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

func register(t *testing.T, app *fiber.App, name, email, password string) authData {
	t.Helper()
	resp, env := doRequest(t, app, http.MethodPost, "/api/users", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var data authData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func TestRegister(t *testing.T) {
	app := setupApp(t)

	data := register(t, app, "Alice", "alice@example.com", "password123")
	assert.Equal(t, "alice@example.com", data.User["email"])
	assert.NotEmpty(t, data.Token)

	// Password never leaves the server, in any casing
	_, hasLower := data.User["password"]
	_, hasUpper := data.User["Password"]
	assert.False(t, hasLower)
	assert.False(t, hasUpper)

	// Stored form is a bcrypt hash of the submitted plaintext
	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	cases := []fiber.Map{
		{"name": "Alice", "email": "not-an-email", "password": "password123"},
		{"name": "Alice", "email": "alice@example.com", "password": "short"},
		{"name": "", "email": "alice@example.com", "password": "password123"},
	}
	for _, body := range cases {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/users", "", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Alice", "alice@example.com", "password123")

	resp, _ := doRequest(t, app, http.MethodPost, "/api/users", "", fiber.Map{
		"name":     "Impostor",
		"email":    "alice@example.com",
		"password": "different456",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// First registration is untouched
	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.Equal(t, "Alice", user.Name)

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Alice", "alice@example.com", "password123")

	resp, env := doRequest(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data authData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Alice", "alice@example.com", "password123")

	resp, _ := doRequest(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "password124",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetProfile(t *testing.T) {
	app := setupApp(t)
	data := register(t, app, "Alice", "alice@example.com", "password123")

	resp, env := doRequest(t, app, http.MethodGet, "/api/users/profile", data.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "alice@example.com", profile["email"])
}

func TestGetProfileRequiresAuth(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	app := setupApp(t)
	data := register(t, app, "Alice", "alice@example.com", "password123")

	resp, _ := doRequest(t, app, http.MethodPut, "/api/users/profile", data.Token, fiber.Map{
		"name": "Alice Cooper",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.Equal(t, "Alice Cooper", user.Name)
	// Omitted password still verifies
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	app := setupApp(t)
	data := register(t, app, "Alice", "alice@example.com", "password123")

	resp, _ := doRequest(t, app, http.MethodPut, "/api/users/profile", data.Token, fiber.Map{
		"password": "newsecret789",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Old password no longer works, new one does
	resp, _ = doRequest(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "newsecret789",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Bob", "bob@example.com", "password123")
	data := register(t, app, "Alice", "alice@example.com", "password123")

	resp, _ := doRequest(t, app, http.MethodPut, "/api/users/profile", data.Token, fiber.Map{
		"email": "bob@example.com",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
