package category_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func adminToken(t *testing.T) string {
	admin := testutils.CreateTestUser(t, database.DB, "admin@example.com", "+5111111110", "password123", models.RoleAdmin)
	return testutils.GetAuthToken(t, admin)
}

func createCategory(t *testing.T, app *fiber.App, token, name string) string {
	resp, err := testutils.MakeRequest(app, "POST", "/categories/", map[string]interface{}{
		"categoryName": name,
		"description":  "A category",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	return result.Data.(map[string]interface{})["id"].(string)
}

func TestCreateCategory(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	id := createCategory(t, app, token, "Apartment")

	var category models.Category
	err := database.DB.First(&category, "id = ?", id).Error
	assert.NoError(t, err)
	assert.Equal(t, "Apartment", category.CategoryName)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	createCategory(t, app, token, "Studio")

	resp, err := testutils.MakeRequest(app, "POST", "/categories/", map[string]interface{}{
		"categoryName": "Studio",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.Code)
	testutils.AssertError(t, resp, "CONFLICT")
}

func TestUpdateCategoryDuplicateName(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	createCategory(t, app, token, "Villa")
	id := createCategory(t, app, token, "Cottage")

	resp, err := testutils.MakeRequest(app, "PUT", "/categories/"+id, map[string]interface{}{
		"categoryName": "Villa",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.Code)

	// Re-submitting its own name is not a conflict.
	resp, err = testutils.MakeRequest(app, "PUT", "/categories/"+id, map[string]interface{}{
		"categoryName": "Cottage",
		"description":  "Updated",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.Code)
}

func TestCategoryWritesAreAdminOnly(t *testing.T) {
	app := testutils.SetupTestApp(t)
	host := testutils.CreateTestUser(t, database.DB, "host@example.com", "+5111111111", "password123", models.RoleHost)
	token := testutils.GetAuthToken(t, host)

	resp, err := testutils.MakeRequest(app, "POST", "/categories/", map[string]interface{}{
		"categoryName": "Nope",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.Code)
}

func TestListCategoriesIsPublic(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	createCategory(t, app, token, "Bungalow")
	createCategory(t, app, token, "Apartment")

	resp, err := testutils.MakeRequest(app, "GET", "/categories/", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	categories := result.Data.([]interface{})
	assert.Len(t, categories, 2)
	// Ordered by name.
	assert.Equal(t, "Apartment", categories[0].(map[string]interface{})["categoryName"])
}

func TestDeleteCategory(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	id := createCategory(t, app, token, "Temporary")

	resp, err := testutils.MakeRequest(app, "DELETE", "/categories/"+id, nil, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.Code)

	resp, err = testutils.MakeRequest(app, "GET", "/categories/"+id, nil, "")
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.Code)
}
