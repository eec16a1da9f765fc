package server

import (
	"time"

	"github.com/roomly/api/internal/auth"
	"github.com/roomly/api/internal/blog"
	"github.com/roomly/api/internal/category"
	"github.com/roomly/api/internal/listing"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Roomly API is running",
		})
	})

	// ==========================================
	// AUTH
	// ==========================================
	authGroup := app.Group("/auth")
	authGroup.Post("/register", auth.RegisterHandler)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.LoginHandler)
	authGroup.Post("/refresh-token", auth.RefreshTokenHandler)
	authGroup.Patch("/change-password", auth.JWTProtected(), auth.ChangePasswordHandler)

	// ==========================================
	// USERS
	// ==========================================
	userGroup := app.Group("/users")
	userGroup.Use(auth.JWTProtected())
	userGroup.Get("/me", user.GetMeHandler)
	userGroup.Patch("/me", user.UpdateProfileHandler)
	userGroup.Get("/", auth.AdminProtected(), user.ListUsersHandler)
	userGroup.Patch("/:id/status", auth.AdminProtected(), user.UpdateUserStatusHandler)
	userGroup.Delete("/:id", auth.AdminProtected(), user.DeleteUserHandler)

	// ==========================================
	// HOUSE RENTALS
	// ==========================================
	houseGroup := app.Group("/house-rents")
	houseGroup.Get("/", listing.ListHouseRentsHandler)
	houseGroup.Get("/:id", listing.GetHouseRentHandler)
	houseGroup.Post("/",
		auth.JWTProtected(), auth.RoleProtected(models.RoleHost),
		listing.CreateHouseRentHandler)
	houseGroup.Put("/:id",
		auth.JWTProtected(), auth.RoleProtected(models.RoleHost),
		listing.UpdateHouseRentHandler)
	houseGroup.Delete("/:id",
		auth.JWTProtected(), auth.RoleProtected(models.RoleHost),
		listing.DeleteHouseRentHandler)
	houseGroup.Patch("/:id/approval",
		auth.JWTProtected(), auth.AdminProtected(),
		listing.ApproveHouseRentHandler)

	// ==========================================
	// HOSTEL RENTALS
	// ==========================================
	hostelGroup := app.Group("/hostel-rents")
	hostelGroup.Get("/", listing.ListHostelRentsHandler)
	hostelGroup.Get("/:id", listing.GetHostelRentHandler)
	hostelGroup.Post("/",
		auth.JWTProtected(), auth.RoleProtected(models.RoleHost),
		listing.CreateHostelRentHandler)
	hostelGroup.Put("/:id",
		auth.JWTProtected(), auth.RoleProtected(models.RoleHost),
		listing.UpdateHostelRentHandler)
	hostelGroup.Delete("/:id",
		auth.JWTProtected(), auth.RoleProtected(models.RoleHost),
		listing.DeleteHostelRentHandler)
	hostelGroup.Patch("/:id/approval",
		auth.JWTProtected(), auth.AdminProtected(),
		listing.ApproveHostelRentHandler)

	// Listing image uploads (hosts only)
	app.Post("/uploads",
		auth.JWTProtected(), auth.RoleProtected(models.RoleHost),
		listing.UploadImageHandler)

	// ==========================================
	// CATEGORIES
	// ==========================================
	categoryGroup := app.Group("/categories")
	categoryGroup.Get("/", category.ListCategoriesHandler)
	categoryGroup.Get("/:id", category.GetCategoryHandler)
	categoryGroup.Post("/", auth.JWTProtected(), auth.AdminProtected(), category.CreateCategoryHandler)
	categoryGroup.Put("/:id", auth.JWTProtected(), auth.AdminProtected(), category.UpdateCategoryHandler)
	categoryGroup.Delete("/:id", auth.JWTProtected(), auth.AdminProtected(), category.DeleteCategoryHandler)

	// ==========================================
	// BLOGS
	// ==========================================
	blogGroup := app.Group("/blogs")
	blogGroup.Get("/", blog.ListBlogsHandler)
	blogGroup.Get("/:id", blog.GetBlogHandler)
	blogGroup.Post("/", auth.JWTProtected(), auth.AdminProtected(), blog.CreateBlogHandler)
	blogGroup.Put("/:id", auth.JWTProtected(), auth.AdminProtected(), blog.UpdateBlogHandler)
	blogGroup.Delete("/:id", auth.JWTProtected(), auth.AdminProtected(), blog.DeleteBlogHandler)
}
