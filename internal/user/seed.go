package user

import (
	"errors"
	"log"
	"os"

	"github.com/roomly/api/internal/auth"
	"github.com/roomly/api/internal/models"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates a bootstrap SUPER_ADMIN account from env so a
// fresh deployment has a moderator. No-op when the env vars are unset
// or the account already exists.
func SeedSuperAdmin(db *gorm.DB) error {
	email := os.Getenv("SUPER_ADMIN_EMAIL")
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	contact := os.Getenv("SUPER_ADMIN_CONTACT")
	if email == "" || password == "" || contact == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	name := os.Getenv("SUPER_ADMIN_NAME")
	if name == "" {
		name = "Super Admin"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:         email,
		ContactNumber: contact,
		Password:      hash,
		Role:          models.RoleSuperAdmin,
		Status:        models.StatusActive,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		profile := models.AdminProfile{UserID: admin.ID, Name: name}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded super admin account %s", email)
	return nil
}
