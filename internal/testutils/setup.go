package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/roomly/api/internal/auth"
	"github.com/roomly/api/internal/config"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/server"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err, "Failed to create test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.AdminProfile{},
		&models.HostProfile{},
		&models.CustomerProfile{},
		&models.DoctorProfile{},
		&models.Category{},
		&models.HouseRent{},
		&models.HostelRent{},
		&models.Blog{},
	)
	assert.NoError(t, err, "Failed to migrate test database")

	return db
}

func SetupTestApp(t *testing.T) *fiber.App {
	db := TestDB(t)
	database.DB = db

	auth.Setup(config.Load())

	return server.New(db)
}

// RegisterBody builds a valid registration payload for the given role.
func RegisterBody(email, contact string, role models.Role) map[string]interface{} {
	body := map[string]interface{}{
		"email":         email,
		"password":      "password123",
		"contactNumber": contact,
		"role":          string(role),
		"name":          "Test User",
	}
	if role == models.RoleDoctor {
		body["registrationNumber"] = "REG-" + contact
		body["qualification"] = "MBBS"
		body["appointmentFee"] = 50
	}
	return body
}

// CreateTestUser persists a user with its role profile and returns both.
func CreateTestUser(t *testing.T, db *gorm.DB, email, contact, password string, role models.Role) *models.User {
	principal, _, err := auth.Register(db, auth.RegisterInput{
		Email:              email,
		Password:           password,
		ContactNumber:      contact,
		Role:               role,
		Name:               "Test User",
		RegistrationNumber: "REG-" + contact,
		Qualification:      "MBBS",
		AppointmentFee:     50,
	})
	if err != nil {
		t.Fatalf("Failed to create test user %s: %v", email, err)
	}

	user := principal.User
	return &user
}

func SetUserStatus(t *testing.T, db *gorm.DB, userID interface{}, status models.UserStatus) {
	err := db.Model(&models.User{}).Where("id = ?", userID).Update("status", status).Error
	assert.NoError(t, err, "Failed to update user status")
}

func GetAuthToken(t *testing.T, u *models.User) string {
	token, err := auth.GenerateAccessToken(u)
	assert.NoError(t, err, "Failed to generate test token")
	return token
}

func MakeRequest(app *fiber.App, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()

	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode

	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	if resp.Body.Len() == 0 {
		t.Log("Warning: Response body is empty")
		return
	}

	err := json.NewDecoder(resp.Body).Decode(v)
	if err != nil && err != io.EOF {
		t.Logf("Response body: %s", resp.Body.String())
		assert.NoError(t, err, "Failed to parse response")
	}
}

type StandardResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data"`
	Error   *ErrorDetail `json:"error"`
	Meta    *Meta        `json:"meta"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func AssertSuccess(t *testing.T, resp *httptest.ResponseRecorder) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.True(t, result.Success, "Expected success response")
	assert.Empty(t, result.Error, "Expected no error")
}

func AssertError(t *testing.T, resp *httptest.ResponseRecorder, expectedCode string) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.False(t, result.Success, "Expected error response")
	assert.NotNil(t, result.Error, "Expected error object")
	if result.Error != nil {
		assert.Equal(t, expectedCode, result.Error.Code, "Error code mismatch")
	}
}
