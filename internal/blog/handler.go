package blog

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var policy = bluemonday.UGCPolicy()

type blogInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	FeaturedImage string   `json:"featuredImage"`
	Author        string   `json:"author"`
	Tags          []string `json:"tags"`
	IsPublished   *bool    `json:"isPublished"`
}

// ListBlogsHandler is public and returns published posts only.
func ListBlogsHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := database.DB.Model(&models.Blog{}).Where("is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count blogs")
	}

	var blogs []models.Blog
	err := query.Order("published_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch blogs")
	}

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, blogs, meta, "Blogs retrieved successfully")
}

func GetBlogHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid blog ID", nil)
	}

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Blog")
		}
		return response.InternalError(c, "Failed to fetch blog")
	}

	if err := database.DB.Model(&blog).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("Failed to increment views for blog %s: %v", blog.ID, err)
	} else {
		blog.Views++
	}

	return response.Success(c, blog, "Blog retrieved successfully")
}

func CreateBlogHandler(c *fiber.Ctx) error {
	var body blogInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Title == "" || body.Content == "" {
		return response.ValidationError(c, map[string]string{
			"title":   "title is required",
			"content": "content is required",
		})
	}

	blog := models.Blog{
		Title:         body.Title,
		Content:       policy.Sanitize(body.Content),
		FeaturedImage: body.FeaturedImage,
		Author:        body.Author,
		Tags:          tagsToJSON(body.Tags),
	}
	if body.IsPublished != nil && *body.IsPublished {
		now := time.Now()
		blog.IsPublished = true
		blog.PublishedAt = &now
	}

	if err := database.DB.Create(&blog).Error; err != nil {
		return response.InternalError(c, "Failed to create blog")
	}

	return response.Created(c, blog, "Blog created successfully")
}

func UpdateBlogHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid blog ID", nil)
	}

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Blog")
		}
		return response.InternalError(c, "Failed to fetch blog")
	}

	var body blogInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Title != "" {
		blog.Title = body.Title
	}
	if body.Content != "" {
		blog.Content = policy.Sanitize(body.Content)
	}
	if body.FeaturedImage != "" {
		blog.FeaturedImage = body.FeaturedImage
	}
	if body.Author != "" {
		blog.Author = body.Author
	}
	if body.Tags != nil {
		blog.Tags = tagsToJSON(body.Tags)
	}
	if body.IsPublished != nil {
		blog.IsPublished = *body.IsPublished
		if *body.IsPublished && blog.PublishedAt == nil {
			now := time.Now()
			blog.PublishedAt = &now
		}
	}

	if err := database.DB.Save(&blog).Error; err != nil {
		return response.InternalError(c, "Failed to update blog")
	}

	return response.Success(c, blog, "Blog updated successfully")
}

func DeleteBlogHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid blog ID", nil)
	}

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Blog")
		}
		return response.InternalError(c, "Failed to fetch blog")
	}

	if err := database.DB.Delete(&blog).Error; err != nil {
		return response.InternalError(c, "Failed to delete blog")
	}

	return response.NoContent(c)
}

func tagsToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		return nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
