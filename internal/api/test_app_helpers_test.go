package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/db"
	"github.com/voltadev/shiftbook/internal/models"
	"gorm.io/gorm"
)

const testWebhookToken = "test-hook-token"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "shiftbook-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler, err := NewHandler(database, "test-secret", testWebhookToken, time.UTC, false)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

// registerTestDriver creates an account through the public endpoint and
// returns its bearer token, so every test exercises the real auth path.
func registerTestDriver(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "StrongPass1",
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s expected 201, got %d: %s", email, status, body)
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil || parsed.Token == "" {
		t.Fatalf("register %s returned no token: %s", email, body)
	}
	return parsed.Token
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) (int, string) {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload for %s %s: %v", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	request.Header.Set("Accept", fiber.MIMEApplicationJSON)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response.StatusCode, string(body)
}

func decodeBody(t *testing.T, body string, target any) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), target); err != nil {
		t.Fatalf("decode response %q: %v", body, err)
	}
}

func loadUserByEmail(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	var user models.User
	if err := database.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", email, err)
	}
	return user
}

func updateUser(t *testing.T, database *gorm.DB, userID uint, fields map[string]any) {
	t.Helper()

	if err := database.Model(&models.User{}).Where("id = ?", userID).Updates(fields).Error; err != nil {
		t.Fatalf("update user %d: %v", userID, err)
	}
}
