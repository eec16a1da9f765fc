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

type houseRentInput struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     int        `json:"bathrooms"`
	SquareFeet    int        `json:"squareFeet"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	ZipCode       string     `json:"zipCode"`
	Images        []string   `json:"images"`
	Amenities     []string   `json:"amenities"`
	IsAvailable   *bool      `json:"isAvailable"`
	AvailableFrom *time.Time `json:"availableFrom"`
	CategoryID    *uuid.UUID `json:"categoryId"`
}

// ListHouseRentsHandler is public: only approved and available listings
// are returned.
func ListHouseRentsHandler(c *fiber.Ctx) error {
	page, limit := pagination(c)

	query := database.DB.Model(&models.HouseRent{}).
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
	if bedrooms := c.QueryInt("bedrooms"); bedrooms > 0 {
		query = query.Where("bedrooms = ?", bedrooms)
	}
	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count listings")
	}

	var listings []models.HouseRent
	err := query.Preload("Owner").Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch listings")
	}

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, listings, meta, "House rentals retrieved successfully")
}

func GetHouseRentHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing ID", nil)
	}

	var listing models.HouseRent
	err = database.DB.Preload("Owner").Preload("Category").
		First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "House rental")
		}
		return response.InternalError(c, "Failed to fetch listing")
	}

	// View counting must not fail the read.
	if err := database.DB.Model(&listing).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("Failed to increment views for house rent %s: %v", listing.ID, err)
	} else {
		listing.Views++
	}

	return response.Success(c, listing, "House rental retrieved successfully")
}

func CreateHouseRentHandler(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	hostID, ok := principal.HostProfileID()
	if !ok {
		return response.Forbidden(c, "Only hosts can create listings")
	}

	var body houseRentInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if fields := validateHouseRent(&body); len(fields) > 0 {
		return response.ValidationError(c, fields)
	}

	listing := models.HouseRent{
		Title:         body.Title,
		Description:   body.Description,
		Price:         body.Price,
		Bedrooms:      body.Bedrooms,
		Bathrooms:     body.Bathrooms,
		SquareFeet:    body.SquareFeet,
		Address:       body.Address,
		City:          body.City,
		State:         body.State,
		ZipCode:       body.ZipCode,
		Images:        toJSON(body.Images),
		Amenities:     toJSON(body.Amenities),
		IsAvailable:   true,
		AvailableFrom: body.AvailableFrom,
		OwnerID:       hostID,
		CategoryID:    body.CategoryID,
	}
	if body.IsAvailable != nil {
		listing.IsAvailable = *body.IsAvailable
	}

	if err := database.DB.Create(&listing).Error; err != nil {
		return response.InternalError(c, "Failed to create listing")
	}

	return response.Created(c, listing, "House rental created successfully")
}

func UpdateHouseRentHandler(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing ID", nil)
	}

	var listing models.HouseRent
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "House rental")
		}
		return response.InternalError(c, "Failed to fetch listing")
	}

	// Second authorization step after the role check: the listing must
	// belong to the caller's own host profile.
	if !auth.OwnsResource(principal, listing.OwnerID) {
		return response.Forbidden(c, "You can only update your own listings")
	}

	var body houseRentInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	applyHouseRentUpdate(&listing, &body)

	if err := database.DB.Save(&listing).Error; err != nil {
		return response.InternalError(c, "Failed to update listing")
	}

	return response.Success(c, listing, "House rental updated successfully")
}

func DeleteHouseRentHandler(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing ID", nil)
	}

	var listing models.HouseRent
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "House rental")
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

// ApproveHouseRentHandler toggles moderation approval. Admin only.
func ApproveHouseRentHandler(c *fiber.Ctx) error {
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

	var listing models.HouseRent
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "House rental")
		}
		return response.InternalError(c, "Failed to fetch listing")
	}

	if err := database.DB.Model(&listing).Update("is_approved", body.IsApproved).Error; err != nil {
		return response.InternalError(c, "Failed to update approval")
	}

	return response.Success(c, listing, "Approval status updated successfully")
}

func validateHouseRent(body *houseRentInput) map[string]string {
	fields := map[string]string{}
	if body.Title == "" {
		fields["title"] = "title is required"
	}
	if body.Price <= 0 {
		fields["price"] = "price must be greater than 0"
	}
	if body.Bedrooms <= 0 {
		fields["bedrooms"] = "bedrooms must be greater than 0"
	}
	if body.Bathrooms <= 0 {
		fields["bathrooms"] = "bathrooms must be greater than 0"
	}
	if body.Address == "" {
		fields["address"] = "address is required"
	}
	if body.City == "" {
		fields["city"] = "city is required"
	}
	return fields
}

func applyHouseRentUpdate(listing *models.HouseRent, body *houseRentInput) {
	if body.Title != "" {
		listing.Title = body.Title
	}
	if body.Description != "" {
		listing.Description = body.Description
	}
	if body.Price > 0 {
		listing.Price = body.Price
	}
	if body.Bedrooms > 0 {
		listing.Bedrooms = body.Bedrooms
	}
	if body.Bathrooms > 0 {
		listing.Bathrooms = body.Bathrooms
	}
	if body.SquareFeet > 0 {
		listing.SquareFeet = body.SquareFeet
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
	if body.Amenities != nil {
		listing.Amenities = toJSON(body.Amenities)
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
}
