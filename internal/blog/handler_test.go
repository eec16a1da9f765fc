package blog_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func adminToken(t *testing.T) string {
	admin := testutils.CreateTestUser(t, database.DB, "admin@example.com", "+4111111110", "password123", models.RoleAdmin)
	return testutils.GetAuthToken(t, admin)
}

func TestCreateBlogSanitizesContent(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/blogs/", map[string]interface{}{
		"title":   "Safe Post",
		"content": `<p>Hello</p><script>alert("xss")</script>`,
		"author":  "Editor",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	id := result.Data.(map[string]interface{})["id"].(string)

	var blog models.Blog
	err = database.DB.First(&blog, "id = ?", id).Error
	assert.NoError(t, err)
	assert.Contains(t, blog.Content, "<p>Hello</p>")
	assert.NotContains(t, blog.Content, "<script>")
	assert.NotContains(t, blog.Content, "alert")
}

func TestPublishSetsTimestamp(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/blogs/", map[string]interface{}{
		"title":   "Draft",
		"content": "<p>Draft body</p>",
	}, token)
	assert.NoError(t, err)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	id := result.Data.(map[string]interface{})["id"].(string)

	var blog models.Blog
	database.DB.First(&blog, "id = ?", id)
	assert.False(t, blog.IsPublished)
	assert.Nil(t, blog.PublishedAt)

	resp, err = testutils.MakeRequest(app, "PUT", "/blogs/"+id, map[string]interface{}{
		"isPublished": true,
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.Code)

	database.DB.First(&blog, "id = ?", id)
	assert.True(t, blog.IsPublished)
	assert.NotNil(t, blog.PublishedAt)
}

func TestPublicListShowsPublishedOnly(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	testutils.MakeRequest(app, "POST", "/blogs/", map[string]interface{}{
		"title":   "Draft",
		"content": "<p>unpublished</p>",
	}, token)
	testutils.MakeRequest(app, "POST", "/blogs/", map[string]interface{}{
		"title":       "Live",
		"content":     "<p>published</p>",
		"isPublished": true,
	}, token)

	resp, err := testutils.MakeRequest(app, "GET", "/blogs/", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	blogs := result.Data.([]interface{})
	assert.Len(t, blogs, 1)
	assert.Equal(t, "Live", blogs[0].(map[string]interface{})["title"])
}

func TestBlogWritesAreAdminOnly(t *testing.T) {
	app := testutils.SetupTestApp(t)
	host := testutils.CreateTestUser(t, database.DB, "host@example.com", "+4111111111", "password123", models.RoleHost)
	token := testutils.GetAuthToken(t, host)

	resp, err := testutils.MakeRequest(app, "POST", "/blogs/", map[string]interface{}{
		"title":   "Nope",
		"content": "<p>nope</p>",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.Code)
}

func TestGetBlogIncrementsViews(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	resp, _ := testutils.MakeRequest(app, "POST", "/blogs/", map[string]interface{}{
		"title":       "Counted",
		"content":     "<p>views</p>",
		"isPublished": true,
	}, token)
	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	id := result.Data.(map[string]interface{})["id"].(string)

	for i := 0; i < 2; i++ {
		resp, err := testutils.MakeRequest(app, "GET", "/blogs/"+id, nil, "")
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.Code)
	}

	var blog models.Blog
	database.DB.First(&blog, "id = ?", id)
	assert.Equal(t, 2, blog.Views)
}

func TestDeleteBlog(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := adminToken(t)

	resp, _ := testutils.MakeRequest(app, "POST", "/blogs/", map[string]interface{}{
		"title":   "Gone",
		"content": "<p>bye</p>",
	}, token)
	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	id := result.Data.(map[string]interface{})["id"].(string)

	resp, err := testutils.MakeRequest(app, "DELETE", "/blogs/"+id, nil, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.Code)

	var count int64
	database.DB.Model(&models.Blog{}).Where("id = ?", id).Count(&count)
	assert.Zero(t, count)
}
