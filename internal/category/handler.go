package category

import (
	"errors"

	"github.com/google/uuid"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type categoryInput struct {
	CategoryName  string `json:"categoryName"`
	CategoryImage string `json:"categoryImage"`
	Description   string `json:"description"`
}

func ListCategoriesHandler(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.DB.Order("category_name ASC").Find(&categories).Error; err != nil {
		return response.InternalError(c, "Failed to fetch categories")
	}

	return response.Success(c, categories, "Categories retrieved successfully")
}

func GetCategoryHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid category ID", nil)
	}

	var category models.Category
	if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category")
		}
		return response.InternalError(c, "Failed to fetch category")
	}

	return response.Success(c, category, "Category retrieved successfully")
}

func CreateCategoryHandler(c *fiber.Ctx) error {
	var body categoryInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.CategoryName == "" {
		return response.ValidationError(c, map[string]string{
			"categoryName": "categoryName is required",
		})
	}

	var existing models.Category
	if err := database.DB.Where("category_name = ?", body.CategoryName).First(&existing).Error; err == nil {
		return response.Conflict(c, "Category with this name already exists")
	}

	category := models.Category{
		CategoryName:  body.CategoryName,
		CategoryImage: body.CategoryImage,
		Description:   body.Description,
	}

	if err := database.DB.Create(&category).Error; err != nil {
		return response.InternalError(c, "Failed to create category")
	}

	return response.Created(c, category, "Category created successfully")
}

func UpdateCategoryHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid category ID", nil)
	}

	var category models.Category
	if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category")
		}
		return response.InternalError(c, "Failed to fetch category")
	}

	var body categoryInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.CategoryName != "" && body.CategoryName != category.CategoryName {
		var existing models.Category
		err := database.DB.Where("category_name = ? AND id != ?", body.CategoryName, id).
			First(&existing).Error
		if err == nil {
			return response.Conflict(c, "Category with this name already exists")
		}
		category.CategoryName = body.CategoryName
	}
	if body.CategoryImage != "" {
		category.CategoryImage = body.CategoryImage
	}
	if body.Description != "" {
		category.Description = body.Description
	}

	if err := database.DB.Save(&category).Error; err != nil {
		return response.InternalError(c, "Failed to update category")
	}

	return response.Success(c, category, "Category updated successfully")
}

func DeleteCategoryHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid category ID", nil)
	}

	var category models.Category
	if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category")
		}
		return response.InternalError(c, "Failed to fetch category")
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		return response.InternalError(c, "Failed to delete category")
	}

	return response.NoContent(c)
}
