package main

import (
	"log"

	"github.com/roomly/api/internal/auth"
	"github.com/roomly/api/internal/config"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/server"
	"github.com/roomly/api/internal/user"
	"github.com/roomly/api/internal/utils"
)

func main() {
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration error: ", err)
	}
	auth.Setup(cfg)
	log.Println("JWT secrets validated")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Database connection failed: ", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	if err := user.SeedSuperAdmin(db); err != nil {
		log.Println("Failed to seed super admin: ", err)
	}

	if err := utils.InitLocalStorage(); err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	if cfg.S3Bucket != "" && cfg.S3Region != "" {
		if err := utils.InitS3(cfg.S3Bucket, cfg.S3Region, cfg.CloudFrontURL); err != nil {
			log.Println("S3 initialization failed, falling back to local storage: ", err)
			utils.SetStorageMode(true)
		} else {
			log.Printf("Using S3 storage: %s (region: %s)", cfg.S3Bucket, cfg.S3Region)
		}
	}

	app := server.New(db)

	log.Printf("Roomly API starting on %s (storage: %s)", cfg.ServerAddr, utils.GetStorageMode())

	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
