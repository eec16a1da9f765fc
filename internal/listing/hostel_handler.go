package listing

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/roomly/api/internal/auth"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type hostelRentInput struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Price           float64           `json:"price"`
	RoomType        models.RoomType   `json:"roomType"`
	MealIncluded    *bool             `json:"mealIncluded"`
	MealDescription string            `json:"mealDescription"`
	TenantType      models.TenantType `json:"tenantType"`
	Address         string            `json:"address"`
	City            string            `json:"city"`
	State           string            `json:"state"`
	ZipCode         string            `json:"zipCode"`
	Images          []string          `json:"images"`
	Facilities      []string          `json:"facilities"`
	IsAvailable     *bool             `json:"isAvailable"`
	AvailableFrom   *time.Time        `json:"availableFrom"`
	CategoryID      *uuid.UUID        `json:"categoryId"`
}

func ListHostelRentsHandler(c *fiber.Ctx) error {
	page, limit := pagination(c)

	query := database.DB.Model(&models.HostelRent{}).
		Where("is_approved = ? AND is_available = ?", true, true)

	if city := c.Query("city"); city != "" {
		query = query.Where("city LIKE ?", "%"+city+"%")
	}
	if minPrice := c.QueryFloat("minPrice"); minPrice > 0 {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice := c.QueryFloat("maxPrice"); maxPrice > 0 {
		query = query.Where("price <= ?", maxPrice)
	}
	if roomType := c.Query("roomType"); roomType != "" {
		query = query.Where("room_type = ?", roomType)
	}
	if tenantType := c.Query("tenantType"); tenantType != "" {
		query = query.Where("tenant_type = ?", tenantType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count listings")
	}

	var listings []models.HostelRent
	err := query.Preload("Owner").Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch listings")
	}

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, listings, meta, "Hostel rentals retrieved successfully")
}

func GetHostelRentHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing ID", nil)
	}

	var listing models.HostelRent
	err = database.DB.Preload("Owner").Preload("Category").
		First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Hostel rental")
		}
		return response.InternalError(c, "Failed to fetch listing")
	}

	if err := database.DB.Model(&listing).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("Failed to increment views for hostel rent %s: %v", listing.ID, err)
	} else {
		listing.Views++
	}

	return response.Success(c, listing, "Hostel rental retrieved successfully")
}

func CreateHostelRentHandler(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	hostID, ok := principal.HostProfileID()
	if !ok {
		return response.Forbidden(c, "Only hosts can create listings")
	}

	var body hostelRentInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	fields := map[string]string{}
	if body.Title == "" {
		fields["title"] = "title is required"
	}
	if body.Price <= 0 {
		fields["price"] = "price must be greater than 0"
	}
	if !body.RoomType.Valid() {
		fields["roomType"] = "roomType must be one of SINGLE, DOUBLE, TRIPLE, SHARED"
	}
	if body.TenantType != "" && !body.TenantType.Valid() {
		fields["tenantType"] = "tenantType must be one of MALE, FEMALE, ANY"
	}
	if body.Address == "" {
		fields["address"] = "address is required"
	}
	if body.City == "" {
		fields["city"] = "city is required"
	}
	if len(fields) > 0 {
		return response.ValidationError(c, fields)
	}

	listing := models.HostelRent{
		Title:           body.Title,
		Description:     body.Description,
		Price:           body.Price,
		RoomType:        body.RoomType,
		MealDescription: body.MealDescription,
		TenantType:      models.TenantAny,
		Address:         body.Address,
		City:            body.City,
		State:           body.State,
		ZipCode:         body.ZipCode,
		Images:          toJSON(body.Images),
		Facilities:      toJSON(body.Facilities),
		IsAvailable:     true,
		AvailableFrom:   body.AvailableFrom,
		OwnerID:         hostID,
		CategoryID:      body.CategoryID,
	}
	if body.TenantType != "" {
		listing.TenantType = body.TenantType
	}
	if body.MealIncluded != nil {
		listing.MealIncluded = *body.MealIncluded
	}
	if body.IsAvailable != nil {
		listing.IsAvailable = *body.IsAvailable
	}

	if err := database.DB.Create(&listing).Error; err != nil {
		return response.InternalError(c, "Failed to create listing")
	}

	return response.Created(c, listing, "Hostel rental created successfully")
}

func UpdateHostelRentHandler(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing ID", nil)
	}

	var listing models.HostelRent
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Hostel rental")
		}
		return response.InternalError(c, "Failed to fetch listing")
	}

	if !auth.OwnsResource(principal, listing.OwnerID) {
		return response.Forbidden(c, "You can only update your own listings")
	}

	var body hostelRentInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.RoomType != "" && !body.RoomType.Valid() {
		return response.ValidationError(c, map[string]string{
			"roomType": "roomType must be one of SINGLE, DOUBLE, TRIPLE, SHARED",
		})
	}
	if body.TenantType != "" && !body.TenantType.Valid() {
		return response.ValidationError(c, map[string]string{
			"tenantType": "tenantType must be one of MALE, FEMALE, ANY",
		})
	}

	if body.Title != "" {
		listing.Title = body.Title
	}
	if body.Description != "" {
		listing.Description = body.Description
	}
	if body.Price > 0 {
		listing.Price = body.Price
	}
	if body.RoomType != "" {
		listing.RoomType = body.RoomType
	}
	if body.TenantType != "" {
		listing.TenantType = body.TenantType
	}
	if body.MealIncluded != nil {
		listing.MealIncluded = *body.MealIncluded
	}
	if body.MealDescription != "" {
		listing.MealDescription = body.MealDescription
	}
	if body.Address != "" {
		listing.Address = body.Address
	}
	if body.City != "" {
		listing.City = body.City
	}
	if body.State != "" {
		listing.State = body.State
	}
	if body.ZipCode != "" {
		listing.ZipCode = body.ZipCode
	}
	if body.Images != nil {
		listing.Images = toJSON(body.Images)
	}
	if body.Facilities != nil {
		listing.Facilities = toJSON(body.Facilities)
	}
	if body.IsAvailable != nil {
		listing.IsAvailable = *body.IsAvailable
	}
	if body.AvailableFrom != nil {
		listing.AvailableFrom = body.AvailableFrom
	}
	if body.CategoryID != nil {
		listing.CategoryID = body.CategoryID
	}

	if err := database.DB.Save(&listing).Error; err != nil {
		return response.InternalError(c, "Failed to update listing")
	}

	return response.Success(c, listing, "Hostel rental updated successfully")
}

func DeleteHostelRentHandler(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing ID", nil)
	}

	var listing models.HostelRent
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Hostel rental")
		}
		return response.InternalError(c, "Failed to fetch listing")
	}

	if !auth.OwnsResource(principal, listing.OwnerID) {
		return response.Forbidden(c, "You can only delete your own listings")
	}

	if err := database.DB.Delete(&listing).Error; err != nil {
		return response.InternalError(c, "Failed to delete listing")
	}

	return response.NoContent(c)
}

func ApproveHostelRentHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing ID", nil)
	}

	var body struct {
		IsApproved bool `json:"isApproved"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var listing models.HostelRent
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Hostel rental")
		}
		return response.InternalError(c, "Failed to fetch listing")
	}

	if err := database.DB.Model(&listing).Update("is_approved", body.IsApproved).Error; err != nil {
		return response.InternalError(c, "Failed to update approval")
	}

	return response.Success(c, listing, "Approval status updated successfully")
}
